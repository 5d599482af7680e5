// Command calc evaluates arithmetic expressions.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/calc"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc [expression ...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate arithmetic expressions, printing one result per expression.

Each argument is one expression. With no arguments, expressions are read one
per line from --in or standard input. Use -- before expressions which begin
with a minus sign.`,
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().String("in", "", "file of expressions, one per line (- for stdin)")
	cmd.Flags().Bool("echo", false, "print tokens before each result")
	cmd.Flags().Int("max-depth", calc.DefaultMaxDepth, "nesting limit of expressions (0 for none)")
	cmd.Flags().String("config", "", "YAML config file (env CALC_CONFIG)")
	cmd.Flags().BoolP("verbose", "v", false, "log evaluation details to stderr")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	defer logger.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("configured",
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Bool("echo", cfg.Echo),
		zap.String("in", cfg.In),
	)

	ev := evaluator{
		out:  cmd.OutOrStdout(),
		errs: cmd.ErrOrStderr(),
		echo: cfg.Echo,
		opts: []calc.Option{calc.MaxDepth(cfg.MaxDepth)},
		log:  logger,
	}
	switch {
	case len(args) > 0:
		for _, arg := range args {
			ev.eval(arg)
		}
	case cfg.In != "" && cfg.In != "-":
		f, err := os.Open(cfg.In)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := ev.lines(f, ""); err != nil {
			return fmt.Errorf("reading %s: %w", cfg.In, err)
		}
	default:
		in := cmd.InOrStdin()
		prompt := ""
		if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			prompt = cfg.Prompt
		}
		if err := ev.lines(in, prompt); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if ev.failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", ev.failed, ev.total)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
}

type evaluator struct {
	out  io.Writer
	errs io.Writer
	echo bool
	opts []calc.Option
	log  *zap.Logger

	total, failed int
}

// lines evaluates each non-blank line of r. If prompt is non-empty, it is
// written before reading each line.
func (ev *evaluator) lines(r io.Reader, prompt string) error {
	sc := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(ev.out, prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		ev.eval(line)
	}
	if prompt != "" {
		fmt.Fprintln(ev.out)
	}
	return sc.Err()
}

// eval evaluates one expression and prints its result or error.
func (ev *evaluator) eval(src string) {
	ev.total++
	r, err := ev.solve(src)
	if err != nil {
		ev.failed++
		ev.log.Debug("evaluation failed", zap.String("expr", src), zap.Error(err))
		fmt.Fprintf(ev.errs, "%s: %v\n", src, err)
		return
	}
	ev.log.Debug("evaluated",
		zap.String("expr", src),
		zap.Stringer("result", r),
		zap.Bool("int", r.IsInt()),
	)
	fmt.Fprintln(ev.out, r)
}

func (ev *evaluator) solve(src string) (calc.Number, error) {
	toks, err := calc.LexString(src)
	if err != nil {
		return calc.Number{}, err
	}
	if ev.echo {
		fmt.Fprintf(ev.out, "%v : ", toks)
	}
	p := calc.NewParser(toks, ev.opts...)
	r, err := p.Expression(0)
	if err == nil {
		err = p.End()
	}
	if err != nil {
		if ev.echo {
			fmt.Fprintln(ev.out, "error")
		}
		return calc.Number{}, err
	}
	return r, nil
}
