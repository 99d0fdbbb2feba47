package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/letter"
	"github.com/dshills/depositclaim/internal/llm"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	template       string
	today          string
	out            string
	escalationDays int
	useLLM         bool
	verbose        bool
}

func main() {
	root := &cobra.Command{
		Use:     "depositclaim",
		Short:   "Generate state-specific security deposit demand letters",
		Long:    "depositclaim generates legal demand letters for tenants seeking return of a security deposit, with statutory deadlines computed per US state.",
		Version: version,
	}

	root.AddCommand(newGenerateCmd(), newServeCmd(), newRemindCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:   "generate <case-file.json>",
		Short: "Generate a demand letter from a case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args[0], flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.template, "template", "", "Force a template: standard, firm, or friendly (default: auto-select by urgency)")
	f.StringVar(&flags.today, "today", "", "Treat this date (YYYY-MM-DD) as today; defaults to the current date")
	f.StringVar(&flags.out, "out", "", "Write the letter to a file instead of stdout")
	f.IntVar(&flags.escalationDays, "escalation-days", letter.DefaultEscalationDays, "Days past the deadline before the firm template is selected")
	f.BoolVar(&flags.useLLM, "llm", false, "Draft the letter via an LLM API; falls back to templates on failure")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runGenerate(casePath string, flags generateFlags) error {
	var override *letter.Variant
	if flags.template != "" {
		v, err := letter.ParseVariant(flags.template)
		if err != nil {
			return codeError(3, "invalid flags: %s", err)
		}
		override = &v
	}
	if flags.escalationDays < 1 {
		return codeError(3, "invalid flags: --escalation-days must be >= 1, got %d", flags.escalationDays)
	}

	today, err := resolveToday(flags.today)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	logVerbose(flags.verbose, "Loading case file: %s", casePath)
	facts, err := claim.Load(casePath)
	if err != nil {
		return codeError(3, "loading case file: %s", err)
	}

	if fieldErrs := claim.Validate(facts); len(fieldErrs) > 0 {
		for _, fe := range fieldErrs {
			fmt.Fprintf(os.Stderr, "  %s\n", fe)
		}
		return codeError(2, "case file failed validation (%d problems)", len(fieldErrs))
	}

	text, err := generateText(facts, today, override, flags)
	if err != nil {
		return err
	}

	return writeLetter(text, flags.out)
}

// generateText runs the LLM path when requested and possible, falling back
// to the deterministic template pipeline.
func generateText(facts claim.Facts, today time.Time, override *letter.Variant, flags generateFlags) (string, error) {
	if flags.useLLM {
		provider, err := llm.FromEnv()
		if err != nil {
			return "", codeError(4, "%s", err)
		}
		logVerbose(flags.verbose, "Drafting letter via LLM")
		text, err := llm.Draft(context.Background(), provider, facts, today)
		if err == nil {
			return text, nil
		}
		fmt.Fprintf(os.Stderr, "WARN: LLM draft failed (%s), using deterministic template\n", err)
	}

	sel := letter.Selector{EscalationDays: flags.escalationDays}
	ltr, err := sel.Generate(facts, today, override)
	if err != nil {
		return "", codeError(2, "generating letter: %s", err)
	}
	logVerbose(flags.verbose, "Selected template: %s (due %s)", ltr.Variant, ltr.Urgency.DueDate.Format("2006-01-02"))
	if !ltr.StateKnown {
		fmt.Fprintf(os.Stderr, "WARN: unrecognized state %q, using fallback rule (%d %s)\n",
			facts.StateCode, ltr.Rule.DeadlineDays, ltr.Rule.Unit.Label(ltr.Rule.DeadlineDays))
	}
	return ltr.Text, nil
}

// resolveToday parses the --today flag, or reads the clock exactly once at
// this boundary. Everything below the CLI takes time as a parameter.
func resolveToday(flag string) (time.Time, error) {
	if flag == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(claim.DateLayout, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--today must be YYYY-MM-DD, got %q", flag)
	}
	return t, nil
}

func writeLetter(text, out string) error {
	if out == "" {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return codeError(3, "writing output file: %s", err)
	}
	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}
