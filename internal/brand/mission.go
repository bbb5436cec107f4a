package brand

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/agbru/brandgen/internal/errors"
)

// MinMissionLength is the minimum number of characters a trimmed mission
// statement must contain before a generation attempt is accepted.
const MinMissionLength = 10

// ValidateMission rejects mission statements that are too short to generate
// from. Length is counted in runes after trimming surrounding whitespace.
func ValidateMission(mission string) error {
	if utf8.RuneCountInString(strings.TrimSpace(mission)) < MinMissionLength {
		return apperrors.ValidationError{
			Field:   "mission",
			Message: apperrors.MissionTooShortMessage,
		}
	}
	return nil
}
