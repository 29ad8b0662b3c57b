package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
)

// errFailed means at least one expression failed. The failures themselves
// have already been reported.
var errFailed = errors.New("some expressions failed")

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

type config struct {
	in      string
	verb    string
	prec    uint
	lenient bool
	echo    bool
	tokens  bool
	noColor bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:   "arith [flags] [expression...]",
		Short: "Evaluate space-separated arithmetic expressions",
		Long: `Arith evaluates arithmetic expressions with + - * / ^ and brackets.

Every token must be separated from the next by exactly one space, e.g.
"( 2 + 3 ) * 4". *, / and ^ share a precedence level and apply left to right,
so "2 * 3 ^ 2" is 36.

Each argument is one expression. With no arguments, or with --in, each line of
the input is one expression. Use -- before an expression that starts with a
negative number.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.run(args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.in, "in", "", "input file, one expression per line (default stdin if no args given)")
	f.StringVar(&cfg.verb, "fmt", "%g", "result formatting string")
	f.UintVarP(&cfg.prec, "prec", "p", 0, "precision of calculations in bits (0 for float64)")
	f.BoolVar(&cfg.lenient, "lenient", false, "ignore extra spaces between tokens")
	f.BoolVar(&cfg.echo, "echo", false, "print each expression fully bracketed before its result")
	f.BoolVar(&cfg.tokens, "tokens", false, "print the tokens of each expression before its result")
	f.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log evaluation times")
	return cmd
}

func (cfg *config) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger.SetOutput(stderr)
	}
	bad := color.New(color.FgRed, color.Bold)
	echo := color.New(color.Faint)
	if cfg.noColor {
		bad.DisableColor()
		echo.DisableColor()
	}
	var opts []arith.ParseOption
	if cfg.lenient {
		opts = append(opts, arith.Lenient())
	}
	var ctx *arith.Context
	if cfg.prec > 0 {
		ctx = arith.NewContext(arith.Prec(cfg.prec))
	}
	verb := cfg.verb + "\n"

	failed := false
	eval := func(src string) {
		start := time.Now()
		echoed := false
		if cfg.tokens {
			echo.Fprintf(stdout, "%q : ", arith.Tokens(src, opts...))
			echoed = true
		}
		if cfg.echo {
			// Errors in grouping are the same as in evaluating, so they
			// are reported below.
			if g, err := arith.Group(src, opts...); err == nil {
				echo.Fprintf(stdout, "%s : ", g)
				echoed = true
			}
		}
		var (
			r   interface{}
			err error
		)
		if ctx != nil {
			r, err = ctx.Eval(src, opts...)
		} else {
			r, err = arith.Eval(src, opts...)
		}
		logger.Printf("%q evaluated in %v", src, time.Since(start))
		if err != nil {
			failed = true
			if echoed {
				fmt.Fprintln(stdout)
			}
			bad.Fprint(stderr, "error:")
			fmt.Fprintf(stderr, " %q: %v\n", src, err)
			return
		}
		fmt.Fprintf(stdout, verb, r)
	}

	for _, arg := range args {
		eval(arg)
	}
	in, err := infile(cfg.in, len(args) == 0, stdin)
	if err != nil {
		return err
	}
	if in != nil {
		defer in.Close()
		lines := bufio.NewScanner(in)
		for lines.Scan() {
			if strings.TrimSpace(lines.Text()) == "" {
				continue
			}
			eval(lines.Text())
		}
		if err := lines.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

// infile opens the input named by the --in flag. An empty name means stdin
// only if std is set.
func infile(inname string, std bool, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(stdin), nil
	}
	return nil, nil
}
