//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"time"

	"github.com/agbru/brandgen/internal/brand"
)

// IdentityGenerator produces a color palette and font pair from a mission
// statement. Implementations call the remote generative service.
type IdentityGenerator interface {
	GenerateIdentity(ctx context.Context, mission string) (brand.Identity, error)
}

// LogoGenerator produces the logo images for a mission statement, primary
// logo first.
type LogoGenerator interface {
	GenerateLogos(ctx context.Context, mission string) (brand.Images, error)
}

// Outcome classifies a finished attempt for metrics.
type Outcome string

// Attempt outcomes.
const (
	OutcomeSuccess         Outcome = "success"
	OutcomeValidationError Outcome = "validation_error"
	OutcomeGenerationError Outcome = "generation_error"
)

// Recorder receives measurements about generation attempts. This interface
// keeps the orchestration layer free of any metrics backend.
type Recorder interface {
	// RecordAttempt is called once per Generate call.
	RecordAttempt(outcome Outcome, duration time.Duration)
	// RecordStage is called once per remote operation that was launched.
	RecordStage(stage string, err error, duration time.Duration)
}

// NullRecorder is a no-op implementation of Recorder.
type NullRecorder struct{}

// RecordAttempt does nothing.
func (NullRecorder) RecordAttempt(Outcome, time.Duration) {}

// RecordStage does nothing.
func (NullRecorder) RecordStage(string, error, time.Duration) {}

// IdentityGeneratorFunc is a function adapter that implements IdentityGenerator.
type IdentityGeneratorFunc func(ctx context.Context, mission string) (brand.Identity, error)

// GenerateIdentity calls the underlying function.
func (f IdentityGeneratorFunc) GenerateIdentity(ctx context.Context, mission string) (brand.Identity, error) {
	return f(ctx, mission)
}

// LogoGeneratorFunc is a function adapter that implements LogoGenerator.
type LogoGeneratorFunc func(ctx context.Context, mission string) (brand.Images, error)

// GenerateLogos calls the underlying function.
func (f LogoGeneratorFunc) GenerateLogos(ctx context.Context, mission string) (brand.Images, error) {
	return f(ctx, mission)
}
