package orchestration

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/brandgen/internal/brand/brandtest"
	"github.com/agbru/brandgen/internal/progress"
)

func TestState_MarshalJSON(t *testing.T) {
	t.Parallel()
	result := &Result{
		AttemptID: "attempt-1",
		Identity:  brandtest.Identity(),
		Images:    brandtest.Images(3),
		Duration:  1500 * time.Millisecond,
	}

	tests := []struct {
		name    string
		state   State
		present []string
		absent  []string
	}{
		{
			name:    "idle",
			state:   State{},
			present: []string{`"phase":"idle"`},
			absent:  []string{`"progress"`, `"result"`, `"message"`},
		},
		{
			name:    "loading carries progress",
			state:   State{Phase: PhaseLoading, Progress: progress.Snapshot{Progress: 25, Message: "Generating logo concepts..."}},
			present: []string{`"phase":"loading"`, `"progress":{"progress":25,"message":"Generating logo concepts..."}`},
			absent:  []string{`"result"`},
		},
		{
			name:    "success carries result only",
			state:   State{Phase: PhaseSuccess, Progress: progress.Done(), Result: result},
			present: []string{`"phase":"success"`, `"attemptId":"attempt-1"`, `"primaryLogo":"data:image/png;base64,`, `"durationMs":1500`, `"importUrl"`},
			absent:  []string{`"progress"`},
		},
		{
			name:    "error carries message only",
			state:   State{Phase: PhaseError, Progress: progress.Done(), Message: "Failed to generate brand identity. quota exceeded"},
			present: []string{`"phase":"error"`, `"message":"Failed to generate brand identity. quota exceeded"`},
			absent:  []string{`"progress"`, `"result"`},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(tt.state)
			require.NoError(t, err)
			s := string(b)
			for _, p := range tt.present {
				assert.Contains(t, s, p)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, s, a)
			}
		})
	}
}

func TestResult_MarshalJSON_Marks(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Result{Images: brandtest.Images(1)})
	require.NoError(t, err)

	var decoded struct {
		SecondaryMarks []string `json:"secondaryMarks"`
		PrimaryLogo    string   `json:"primaryLogo"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.NotNil(t, decoded.SecondaryMarks)
	assert.Empty(t, decoded.SecondaryMarks)
	assert.True(t, strings.HasPrefix(decoded.PrimaryLogo, "data:image/png;base64,"))
}
