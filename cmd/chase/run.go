package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Case is one operation with its arguments and expected output.
type Case struct {
	Op   string `yaml:"op"`
	Args []int  `yaml:"args"`
	Want string `yaml:"want"`
}

// Suite is a batch of cases read from YAML.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

func loadSuite(path string) (*Suite, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read cases")
	}
	var s Suite
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &s, nil
}

// Run evaluates every case, renders a result table to w and returns the number of failures.
// A case with an empty Want only reports its output.
func (s *Suite) Run(w io.Writer) (failed int, err error) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"op", "args", "have", "want", "ok"})
	table.SetAutoWrapText(false)
	for i, c := range s.Cases {
		args := make([]string, len(c.Args))
		for j, x := range c.Args {
			args[j] = fmt.Sprint(x)
		}
		have, err := evaluate(c.Op, args)
		if err != nil {
			return failed, errors.Wrapf(err, "case %d", i)
		}
		ok := c.Want == "" || strings.TrimSpace(c.Want) == have
		if !ok {
			failed++
			log.Debugf("case %d: %s %v: have %q, want %q", i, c.Op, c.Args, have, c.Want)
		}
		table.Append([]string{c.Op, strings.Join(args, " "), have, c.Want, fmt.Sprint(ok)})
	}
	table.Render()
	return failed, nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <cases.yaml>",
		Short: "evaluate a YAML batch of cases and compare results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite(args[0])
			if err != nil {
				return err
			}
			log.Debugf("loaded %d cases from %s", len(s.Cases), args[0])
			failed, err := s.Run(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d of %d cases failed", failed, len(s.Cases))
			}
			return nil
		},
	}
}
