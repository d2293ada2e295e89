package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"kviz/internal/config"
	"kviz/internal/logger"
	"kviz/internal/question"
	"kviz/internal/runner"
	"kviz/internal/session"
	"kviz/internal/ui/live"
)

// playInput allows tests to override stdin for plain play.
var playInput io.Reader = os.Stdin

// runLive runs the live UI on the process terminal.
var runLive = func(ctx context.Context, s *session.Session, opts live.Options) ([]session.Score, error) {
	return live.Run(ctx, s, nil, nil, opts)
}

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .kviz/config.yml)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain")
		seed := flags.Uint64("seed", 0, "Shuffle seed (0 draws a random one)")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Log debug output to stderr")
		logFile := flags.String("log", "", "Append logs to this file")
		replay := flags.String("replay", "", "Replay policy: ask|never")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *uiMode != "" {
			cfg.UI = *uiMode
		}
		if *replay != "" {
			cfg.Replay = strings.ToLower(strings.TrimSpace(*replay))
		}
		if *noColor {
			cfg.NoColor = true
		}
		if *logFile != "" {
			cfg.LogFile = *logFile
		}
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				cfg.Seed = *seed
			}
		})
		if cfg.Replay != config.ReplayAsk && cfg.Replay != config.ReplayNever {
			fmt.Fprintf(stderr, "invalid replay policy %q (expected ask|never)\n", cfg.Replay)
			return ExitUsage
		}

		decision, err := resolveUIMode(cfg.UI, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		log, closeLog, err := logger.New(logger.Options{
			Env:     cfg.Env,
			Verbose: *verbose,
			Writer:  stderr,
			File:    cfg.LogFile,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() {
			_ = log.Sync()
			_ = closeLog()
		}()

		bankPath, err := resolveBankPath(cfg, flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}
		bank, err := question.LoadFile(bankPath)
		if err != nil {
			log.Error("load bank failed", zap.String("bank", bankPath), zap.Error(err))
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitError
		}

		var opts []session.Option
		if cfg.Seed != 0 {
			opts = append(opts, session.WithSeed(cfg.Seed))
		}
		s := session.New(bank, opts...)
		log.Info("quiz loaded",
			zap.String("session_id", s.ID()),
			zap.String("bank", bankPath),
			zap.Int("questions", bank.Len()),
			zap.Bool("live", decision.useLive),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var scores []session.Score
		if decision.useLive {
			scores, err = runLive(ctx, s, live.Options{
				NoColor:     cfg.NoColor,
				AllowReplay: cfg.Replay == config.ReplayAsk,
				Logger:      log,
			})
		} else {
			scores, err = playPlain(ctx, s, cfg, stdout, log)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, live.ErrAborted) {
				log.Info("quiz interrupted", zap.String("session_id", s.ID()), zap.Int("runs", len(scores)))
				fmt.Fprintln(stderr, "Quiz interrupted.")
				return ExitError
			}
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		log.Info("quiz finished", zap.String("session_id", s.ID()), zap.Int("runs", len(scores)))
		return ExitOK
	}
}

// playPlain runs the quiz through the line-oriented console.
func playPlain(ctx context.Context, s *session.Session, cfg config.Config, stdout io.Writer, log *zap.Logger) ([]session.Score, error) {
	in := playInput
	if in == nil {
		in = os.Stdin
	}
	console := runner.NewConsole(in, stdout, runner.ConsoleOptions{NoColor: cfg.NoColor})
	var ask runner.Asker
	if cfg.Replay == config.ReplayAsk {
		ask = console
	}
	return runner.Replay(ctx, s, console, ask, runner.Params{Logger: log})
}
