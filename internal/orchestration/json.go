package orchestration

import (
	"encoding/json"

	"github.com/agbru/brandgen/internal/brand"
	"github.com/agbru/brandgen/internal/progress"
)

type progressJSON struct {
	Progress int    `json:"progress"`
	Message  string `json:"message"`
}

type resultJSON struct {
	AttemptID      string         `json:"attemptId"`
	Identity       brand.Identity `json:"identity"`
	PrimaryLogo    string         `json:"primaryLogo"`
	SecondaryMarks []string       `json:"secondaryMarks"`
	DurationMS     int64          `json:"durationMs"`
}

type stateJSON struct {
	Phase    Phase         `json:"phase"`
	Progress *progressJSON `json:"progress,omitempty"`
	Result   *resultJSON   `json:"result,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// MarshalJSON encodes the result with every image as a data URI.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.view())
}

func (r Result) view() resultJSON {
	marks := r.SecondaryMarks()
	v := resultJSON{
		AttemptID:      r.AttemptID,
		Identity:       r.Identity,
		SecondaryMarks: make([]string, len(marks)),
		DurationMS:     r.Duration.Milliseconds(),
	}
	if primary := r.PrimaryLogo(); primary != nil {
		v.PrimaryLogo = brand.DataURI(primary)
	}
	for i, m := range marks {
		v.SecondaryMarks[i] = brand.DataURI(m)
	}
	return v
}

// MarshalJSON encodes only the data belonging to the active phase.
func (s State) MarshalJSON() ([]byte, error) {
	v := stateJSON{Phase: s.Phase}
	switch s.Phase {
	case PhaseLoading:
		v.Progress = snapshotJSON(s.Progress)
	case PhaseSuccess:
		if s.Result != nil {
			r := s.Result.view()
			v.Result = &r
		}
	case PhaseError:
		v.Message = s.Message
	}
	return json.Marshal(v)
}

func snapshotJSON(s progress.Snapshot) *progressJSON {
	return &progressJSON{Progress: s.Progress, Message: s.Message}
}
