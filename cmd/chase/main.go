// Chase evaluates pointer-chasing algorithms from the command line,
// an interactive prompt, or a YAML batch of cases.
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "devel"

var verbose bool

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "chase",
		Short:        "Evaluate fast/slow pointer algorithms over chains and arrays",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newEvalCmd(), newOpsCmd(), newReplCmd(), newRunCmd())
	return rootCmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval <op> [args...]",
		Short:   "evaluate one operation",
		Example: "  chase eval rotate 2 1 2 3 4 5\n  chase eval circular-loop 2 -1 1 2 2",
		// negative integers are arguments, not shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rest []string
			for _, arg := range args {
				switch arg {
				case "-h", "--help":
					return cmd.Help()
				case "-v", "--verbose":
					log.SetLevel(log.DebugLevel)
				default:
					rest = append(rest, arg)
				}
			}
			if len(rest) == 0 {
				return errors.Errorf("requires an operation; usage: %s", cmd.UseLine())
			}
			log.Debugf("eval %v", rest)
			s, err := evaluate(rest[0], rest[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "list operations and their arguments",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"usage", "description"})
			table.SetAutoWrapText(false)
			for _, name := range names() {
				o := registry[name]
				table.Append([]string{o.usage(), o.short})
			}
			table.Render()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
