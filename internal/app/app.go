package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agbru/brandgen/internal/config"
	"github.com/agbru/brandgen/internal/effects"
	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/gemini"
	"github.com/agbru/brandgen/internal/logging"
	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/progress"
	"github.com/agbru/brandgen/internal/ui"
)

// GeneratorSource builds the two remote generators from the resolved
// configuration.
type GeneratorSource func(cfg config.AppConfig, logger logging.Logger) (orchestration.IdentityGenerator, orchestration.LogoGenerator)

// Application represents the brandgen application instance.
type Application struct {
	Config config.AppConfig

	Out    io.Writer
	ErrOut io.Writer
	Getenv func(string) string

	generators GeneratorSource
	isTerminal func(io.Writer) bool
	exitCode   int
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithGenerators replaces the generative service client.
func WithGenerators(src GeneratorSource) AppOption {
	return func(a *Application) { a.generators = src }
}

// WithTerminalCheck replaces the terminal detection used to decide whether
// output is interactive.
func WithTerminalCheck(fn func(io.Writer) bool) AppOption {
	return func(a *Application) { a.isTerminal = fn }
}

// New creates a new Application writing to out and errOut.
func New(out, errOut io.Writer, opts ...AppOption) *Application {
	a := &Application{
		Config:     config.Default(),
		Out:        out,
		ErrOut:     errOut,
		Getenv:     os.Getenv,
		generators: geminiGenerators,
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run parses args, executes the selected command and returns the process
// exit code.
func (a *Application) Run(ctx context.Context, args []string) int {
	a.exitCode = apperrors.ExitSuccess
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.Out)
	root.SetErr(a.ErrOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.ErrOut, "Error: %v\n", err)
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			return apperrors.ExitErrorConfig
		}
		return apperrors.ExitErrorGeneric
	}
	return a.exitCode
}

func (a *Application) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "brandgen",
		Short: "Generate a brand identity from a mission statement",
		Long: `brandgen turns a company mission statement into a brand package:
a five-color palette, a header and body font pairing, a primary logo and
secondary marks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			if err := config.Resolve(&a.Config, cmd.Flags()); err != nil {
				return err
			}
			ui.InitTheme(a.Config.NoColor)
			if a.Config.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})
	a.Config.BindPersistentFlags(root.PersistentFlags())

	root.AddCommand(
		a.generateCommand(),
		a.tuiCommand(),
		a.serveCommand(),
		a.versionCommand(),
	)
	return root
}

// lifecycle bounds ctx with the configured timeout and cancels it on SIGINT
// or SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if a.Config.Timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// newOrchestrator wires the generators, the progress simulator and the
// ambient stack into an orchestrator.
func (a *Application) newOrchestrator(logger logging.Logger, recorder orchestration.Recorder) *orchestration.Orchestrator {
	identity, logos := a.generators(a.Config, logger)
	sim := progress.New(
		progress.WithInterval(a.Config.TickInterval),
		progress.WithStep(a.Config.TickStep),
	)
	return orchestration.New(identity, logos,
		orchestration.WithSimulator(sim),
		orchestration.WithLogger(logger),
		orchestration.WithRecorder(recorder),
	)
}

// newDispatcher builds the side-effect dispatcher for a surface. An
// interactive dispatcher writes clipboard sequences to tty.
func (a *Application) newDispatcher(interactive bool, tty io.Writer, logger logging.Logger) *effects.Dispatcher {
	if !interactive {
		return effects.NewDispatcher(nil, nil, false, logger)
	}
	return effects.NewDispatcher(
		effects.NewStylesheetLoader(effects.WithFontLogger(logger)),
		effects.NewOSC52Clipboard(tty, a.Getenv),
		true, logger)
}

// logger returns the logger for a terminal surface: debug output on stderr
// when verbose, nothing otherwise. Redirected stderr gets plain lines.
func (a *Application) logger(component string) logging.Logger {
	switch {
	case !a.Config.Verbose:
		return logging.NewNopLogger()
	case a.isTerminal(a.ErrOut):
		return logging.NewConsoleLogger(a.ErrOut, component, true)
	default:
		return logging.NewStdLoggerAdapter(log.New(a.ErrOut, component+": ", log.LstdFlags))
	}
}

// asTimeout replaces a deadline failure with a TimeoutError naming the limit.
func (a *Application) asTimeout(ctx context.Context, err error) error {
	if apperrors.IsContextError(err) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.TimeoutError{Operation: "brand generation", Limit: a.Config.Timeout}
	}
	return err
}

func geminiGenerators(cfg config.AppConfig, logger logging.Logger) (orchestration.IdentityGenerator, orchestration.LogoGenerator) {
	client := gemini.New(gemini.Config{
		APIKey:        cfg.APIKey,
		BaseURL:       cfg.BaseURL,
		IdentityModel: cfg.IdentityModel,
		ImageModel:    cfg.ImageModel,
		Logger:        logger,
	})
	return client, client
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
