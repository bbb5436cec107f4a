package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agbru/brandgen/internal/cli"
	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/logging"
	"github.com/agbru/brandgen/internal/metrics"
	"github.com/agbru/brandgen/internal/orchestration"
	"github.com/agbru/brandgen/internal/server"
	"github.com/agbru/brandgen/internal/tui"
)

func (a *Application) generateCommand() *cobra.Command {
	var mission string
	cmd := &cobra.Command{
		Use:   "generate [mission...]",
		Short: "Generate a brand package and print it",
		Example: `  brandgen generate "An artisanal bakery using organic, locally sourced ingredients"
  brandgen generate --json -m "A cooperative of independent bike repair shops" > brand.json
  brandgen generate -o ./kit "A language-learning app for retirees"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mission == "" {
				mission = strings.Join(args, " ")
			}
			a.exitCode = a.runGenerate(cmd.Context(), mission)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mission, "mission", "m", "", "mission statement (instead of positional words)")
	a.Config.BindGenerateFlags(cmd.Flags())
	return cmd
}

// runGenerate runs one attempt and renders its outcome.
func (a *Application) runGenerate(ctx context.Context, mission string) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	showProgress := !a.Config.JSON && !a.Config.Quiet
	interactive := showProgress && a.isTerminal(a.Out)
	logger := a.logger("generate")

	o := a.newOrchestrator(logger, orchestration.NullRecorder{})
	dispatcher := a.newDispatcher(interactive, a.Out, logger)
	defer dispatcher.Attach(o.Machine())()

	detachProgress := func() {}
	if showProgress {
		detachProgress = cli.NewProgressReporter(a.ErrOut).Attach(o.Machine())
	}

	st, err := o.Generate(ctx, mission)
	detachProgress()

	err = a.asTimeout(ctx, err)
	var timeoutErr apperrors.TimeoutError
	if errors.As(err, &timeoutErr) {
		apperrors.HandleGenerationError(err, a.ErrOut)
	}

	outCfg := cli.OutputConfig{
		JSON:      a.Config.JSON,
		Quiet:     a.Config.Quiet,
		OutputDir: a.Config.OutputDir,
	}
	if outErr := cli.DisplayOutcome(a.Out, mission, st, outCfg); outErr != nil {
		fmt.Fprintf(a.ErrOut, "Error: %v\n", outErr)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitCode(err)
}

func (a *Application) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start an interactive brand generation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := a.logger("tui")
			o := a.newOrchestrator(logger, orchestration.NullRecorder{})
			// The renderer and the clipboard share one serialized output.
			out := tui.NewOutput(a.Out)
			dispatcher := a.newDispatcher(true, out, logger)
			defer dispatcher.Attach(o.Machine())()

			a.exitCode = tui.Run(ctx, boundedOrchestrator{o, a.Config.Timeout}, dispatcher, out, Version)
			return nil
		},
	}
}

func (a *Application) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve brand generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.runServe(ctx)
		},
	}
	a.Config.BindServeFlags(cmd.Flags())
	return cmd
}

// runServe builds one orchestrator per request so that concurrent requests
// never share a workflow.
func (a *Application) runServe(ctx context.Context) error {
	logger := logging.NewLogger(a.ErrOut, "server")
	collector := metrics.New()

	newGenerator := func() server.Generator {
		o := a.newOrchestrator(logger, collector)
		a.newDispatcher(false, nil, logger).Attach(o.Machine())
		return boundedOrchestrator{o, a.Config.Timeout}
	}

	srv := server.New(a.Config.Addr, newGenerator,
		server.WithLogger(logger),
		server.WithMetrics(server.NewMetrics(collector)),
	)
	return srv.ListenAndServe(ctx)
}

func (a *Application) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	}
}

// boundedOrchestrator applies the attempt timeout to every Generate call.
type boundedOrchestrator struct {
	*orchestration.Orchestrator
	timeout time.Duration
}

func (b boundedOrchestrator) Generate(ctx context.Context, mission string) (orchestration.State, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	return b.Orchestrator.Generate(ctx, mission)
}
