package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"carnival/internal/config"
	"carnival/internal/journal"
	"carnival/internal/shell"
	"carnival/internal/ui/live"
)

// runLive is a test seam for running the terminal UI.
var runLive = live.Run

// playInput is the keyboard source for the live UI; nil means stdin.
var playInput io.Reader

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		sources := addSourceFlags(fs)
		seconds := fs.Int("seconds", 0, "Countdown seconds per question (overrides config)")
		onExpire := fs.String("on-expire", "", "What happens at zero: pass, reveal or stop (overrides config)")
		uiMode := fs.String("ui", "", "UI mode: auto, live or plain (overrides config)")
		noColor := fs.Bool("no-color", false, "Disable colors")
		verbose := fs.Bool("verbose", false, "Write a game journal")
		logFile := fs.String("log-file", "", "Journal destination (default: stderr in plain mode, carnival.log in live mode)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		setup, err := loadSetup(sources)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load: %v\n", err)
			return ExitError
		}
		cfg := setup.config
		applyPlayOverrides(&cfg, *seconds, *onExpire, *uiMode, *noColor)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}
		settings, err := cfg.ShellSettings()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI.Mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		j, closeJournal, err := openJournal(*verbose, *logFile, decision.useLive, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open journal: %v\n", err)
			return ExitError
		}
		defer closeJournal()
		title := cfg.DisplayTitle(setup.catalog)
		j.Event("game.start", "title", title, "subjects", len(setup.catalog.Subjects), "seconds", settings.Seconds, "on_expire", settings.Expiry)

		if !decision.useLive {
			fmt.Fprintln(stdout, title)
			writeSubjectTable(stdout, setup.catalog)
			return ExitOK
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		sh := shell.New(setup.catalog, settings)
		model := live.NewModel(sh, live.Options{
			Title:   title,
			Teams:   cfg.ScoreTeams(),
			NoColor: cfg.UI.NoColor,
			Journal: j,
		})
		final, err := runLive(ctx, model, playInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		completed := final.Shell().Completed()
		j.Event("game.end", "completed", len(completed))
		fmt.Fprintf(stdout, "%s: %d of %d subjects complete\n", title, len(completed), len(setup.catalog.Subjects))
		return ExitOK
	}
}

// applyPlayOverrides layers command-line flags over the config file.
func applyPlayOverrides(cfg *config.Config, seconds int, onExpire, uiMode string, noColor bool) {
	if seconds != 0 {
		cfg.Timer.Seconds = seconds
	}
	if onExpire != "" {
		cfg.Timer.OnExpire = onExpire
	}
	if uiMode != "" {
		cfg.UI.Mode = uiMode
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
	config.Normalize(cfg, "")
}

// openJournal picks the journal destination. The live UI owns stdout and
// stderr, so live games log to a file.
func openJournal(verbose bool, logFile string, useLive bool, stderr io.Writer) (*journal.Journal, func(), error) {
	noop := func() {}
	if !verbose {
		return nil, noop, nil
	}
	if logFile == "" && !useLive {
		return journal.New(stderr, journal.Options{}), noop, nil
	}
	if logFile == "" {
		logFile = "carnival.log"
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open %s: %w", logFile, err)
	}
	return journal.New(file, journal.Options{}), func() { _ = file.Close() }, nil
}
