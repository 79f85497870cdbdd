package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"dasa.cc/chase/internal/complete"
)

type auto struct{ complete.Index }

func newauto() *auto {
	a := &auto{}
	a.Add(names()...)
	a.Add("help", "ops", "exit")
	return a
}

// Do completes the operation name under the cursor; arguments are not completed.
// readline can only extend what was typed, so candidates are prefix matches.
// Fuzzy matches surface through suggest once a line is evaluated.
func (a *auto) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	ln := string(line[:pos])
	if strings.ContainsRune(ln, ' ') {
		return nil, 0
	}
	ms, _ := a.Match(ln, 0)
	for _, s := range ms {
		// readline replaces the last offset runes with each candidate.
		if strings.HasPrefix(s, ln) {
			newLine = append(newLine, []rune(strings.TrimPrefix(s, ln)+" "))
		}
	}
	return newLine, len([]rune(ln))
}

// suggest returns the operation names closest to a misspelled name, best first.
func suggest(name string) []string {
	ms, _ := newauto().Match(name, 0.33)
	return ms
}

type replOptions struct {
	prompt  string
	history string
}

func newReplCmd() *cobra.Command {
	var opts replOptions
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "evaluate operations interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				return interactive(opts)
			}
			return batch(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	opts.addFlags(replCmd.Flags())
	return replCmd
}

func (opts *replOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&opts.prompt, "prompt", "chase: ", "prompt shown before each line")
	fs.StringVar(&opts.history, "history", "", "history file; a temporary file if empty")
}

func interactive(opts replOptions) error {
	history := opts.history
	if history == "" {
		tmp, err := os.CreateTemp("", "chase")
		if err != nil {
			return errors.Wrap(err, "history file")
		}
		tmp.Close()
		defer os.Remove(tmp.Name())
		history = tmp.Name()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            opts.prompt,
		HistoryFile:       history,
		AutoComplete:      newauto(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return errors.Wrap(err, "readline")
	}
	defer rl.Close()

	log.SetOutput(rl.Stderr())
	defer log.SetOutput(os.Stderr)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if !respond(rl.Stdout(), line) {
			return nil
		}
	}
}

// batch reads one operation per line until EOF, for piped input.
func batch(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !respond(w, sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// respond evaluates line and writes the result; false once the session should end.
func respond(w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
	case "exit", "quit":
		return false
	case "help", "ops":
		for _, name := range names() {
			fmt.Fprintf(w, "%-48s %s\n", registry[name].usage(), registry[name].short)
		}
	default:
		s, err := evaluateLine(line)
		if err != nil {
			log.Errorf("%v", err)
			if errors.Is(err, ErrUnknownOp) {
				if ms := suggest(strings.Fields(line)[0]); len(ms) > 0 {
					fmt.Fprintf(w, "did you mean %s?\n", strings.Join(ms, ", "))
				}
			}
			break
		}
		fmt.Fprintln(w, s)
	}
	return true
}
