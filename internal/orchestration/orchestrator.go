package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/brandgen/internal/brand"
	apperrors "github.com/agbru/brandgen/internal/errors"
	"github.com/agbru/brandgen/internal/logging"
	"github.com/agbru/brandgen/internal/progress"
)

const tracerName = "github.com/agbru/brandgen/internal/orchestration"

// Orchestrator runs generation attempts and is the only writer of its
// Machine. It is safe to reuse across many attempts; attempts are expected to
// be issued one at a time by a single caller.
type Orchestrator struct {
	identity IdentityGenerator
	logos    LogoGenerator

	machine   *Machine
	simulator *progress.Simulator
	logger    logging.Logger
	recorder  Recorder
	tracer    trace.Tracer
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithSimulator replaces the default progress simulator.
func WithSimulator(s *progress.Simulator) Option {
	return func(o *Orchestrator) { o.simulator = s }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithTracer sets the tracer used for attempt and stage spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) { o.tracer = t }
}

// New creates an Orchestrator for the two generators. The returned
// orchestrator's Machine starts in PhaseIdle.
func New(identity IdentityGenerator, logos LogoGenerator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		identity: identity,
		logos:    logos,
		machine:  NewMachine(),
		logger:   logging.NewNopLogger(),
		recorder: NullRecorder{},
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.simulator == nil {
		o.simulator = progress.New()
	}
	o.simulator.Subscribe(o.machine.setProgress)
	return o
}

// Machine returns the workflow state machine driven by this orchestrator.
func (o *Orchestrator) Machine() *Machine { return o.machine }

// Simulator returns the progress simulator driven by this orchestrator.
func (o *Orchestrator) Simulator() *progress.Simulator { return o.simulator }

// Generate runs one attempt for mission and returns the terminal state along
// with the classified error (nil on success).
//
// A mission shorter than brand.MinMissionLength fails immediately with an
// apperrors.ValidationError and no remote call. Otherwise identity and logo
// generation run concurrently and both are awaited; if either fails the
// attempt fails with an apperrors.GenerationError and whatever the other
// produced is discarded. The simulator is stopped on every path before the
// terminal state is published.
func (o *Orchestrator) Generate(ctx context.Context, mission string) (State, error) {
	attemptID := uuid.NewString()
	start := time.Now()

	ctx, span := o.tracer.Start(ctx, "generate",
		trace.WithAttributes(attribute.String("brandgen.attempt_id", attemptID)))
	defer span.End()

	if err := brand.ValidateMission(mission); err != nil {
		o.simulator.Stop()
		st := o.machine.fail(apperrors.UserMessage(err))
		o.logger.Info("mission rejected", logging.String("attempt", attemptID))
		o.finish(span, OutcomeValidationError, err, time.Since(start))
		return st, err
	}

	o.machine.begin()
	o.simulator.Start()
	o.logger.Info("generation started", logging.String("attempt", attemptID))

	result, err := o.run(ctx, mission)
	o.simulator.Stop()

	elapsed := time.Since(start)
	if err != nil {
		st := o.machine.fail(apperrors.UserMessage(err))
		o.logger.Error("generation failed", err,
			logging.String("attempt", attemptID), logging.Duration("elapsed", elapsed))
		o.finish(span, OutcomeGenerationError, err, elapsed)
		return st, err
	}

	result.AttemptID = attemptID
	result.Duration = elapsed
	st := o.machine.succeed(result)
	o.logger.Info("generation succeeded",
		logging.String("attempt", attemptID),
		logging.Int("colors", len(result.Identity.Colors)),
		logging.Int("images", len(result.Images)),
		logging.Duration("elapsed", elapsed))
	o.finish(span, OutcomeSuccess, nil, elapsed)
	return st, nil
}

// run launches both remote operations and joins them. Neither operation is
// canceled when the other fails.
func (o *Orchestrator) run(ctx context.Context, mission string) (Result, error) {
	var (
		identity brand.Identity
		images   brand.Images
		g        errgroup.Group
	)

	g.Go(func() error {
		return o.stage(ctx, apperrors.StageIdentity, func(ctx context.Context) error {
			id, err := o.identity.GenerateIdentity(ctx, mission)
			if err != nil {
				return err
			}
			if err := id.Validate(); err != nil {
				return err
			}
			identity = id
			return nil
		})
	})

	g.Go(func() error {
		return o.stage(ctx, apperrors.StageLogos, func(ctx context.Context) error {
			imgs, err := o.logos.GenerateLogos(ctx, mission)
			if err != nil {
				return err
			}
			if len(imgs) == 0 {
				return brand.ErrNoImages
			}
			images = imgs
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Identity: identity, Images: images}, nil
}

// stage runs one remote operation inside its own span, converts a panic into
// an error, and wraps failures in a GenerationError.
func (o *Orchestrator) stage(ctx context.Context, stage apperrors.Stage, fn func(context.Context) error) (err error) {
	ctx, span := o.tracer.Start(ctx, string(stage))
	defer span.End()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s generator panicked: %v", stage, r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			o.recorder.RecordStage(string(stage), err, time.Since(start))
			err = apperrors.GenerationError{Stage: stage, Cause: err}
			return
		}
		o.recorder.RecordStage(string(stage), nil, time.Since(start))
	}()

	return fn(ctx)
}

func (o *Orchestrator) finish(span trace.Span, outcome Outcome, err error, elapsed time.Duration) {
	span.SetAttributes(attribute.String("brandgen.outcome", string(outcome)))
	if err != nil {
		span.SetStatus(codes.Error, apperrors.UserMessage(err))
	}
	o.recorder.RecordAttempt(outcome, elapsed)
}
