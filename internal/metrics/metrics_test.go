package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/brandgen/internal/orchestration"
)

var _ orchestration.Recorder = (*Collector)(nil)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	return rec.Body.String()
}

func TestCollector_RecordAttempt(t *testing.T) {
	t.Parallel()
	c := New()
	c.RecordAttempt(orchestration.OutcomeSuccess, 3*time.Second)
	c.RecordAttempt(orchestration.OutcomeSuccess, 4*time.Second)
	c.RecordAttempt(orchestration.OutcomeValidationError, time.Millisecond)

	body := scrape(t, c)
	for _, want := range []string{
		`brandgen_generation_attempts_total{outcome="success"} 2`,
		`brandgen_generation_attempts_total{outcome="validation_error"} 1`,
		`brandgen_generation_duration_seconds_count{outcome="success"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}

func TestCollector_RecordStage(t *testing.T) {
	t.Parallel()
	c := New()
	c.RecordStage("identity", nil, time.Second)
	c.RecordStage("logos", errors.New("quota exceeded"), 2*time.Second)

	body := scrape(t, c)
	tests := []struct {
		name string
		want string
	}{
		{"successful stage", `brandgen_stage_duration_seconds_count{result="ok",stage="identity"} 1`},
		{"failed stage", `brandgen_stage_duration_seconds_count{result="error",stage="logos"} 1`},
		{"failure counter", `brandgen_stage_failures_total{stage="logos"} 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(body, tt.want) {
				t.Errorf("scrape output missing %q", tt.want)
			}
		})
	}
	if strings.Contains(body, `brandgen_stage_failures_total{stage="identity"}`) {
		t.Error("successful stage must not count as a failure")
	}
}

func TestCollector_IncludesRuntimeMetrics(t *testing.T) {
	t.Parallel()
	body := scrape(t, New())
	if !strings.Contains(body, "go_goroutines") {
		t.Error("metrics output should contain Go runtime metrics")
	}
}

func TestCollector_IndependentRegistries(t *testing.T) {
	t.Parallel()
	a, b := New(), New()
	a.RecordAttempt(orchestration.OutcomeGenerationError, time.Second)
	if strings.Contains(scrape(t, b), `outcome="generation_error"`) {
		t.Error("collectors must not share state")
	}
}
