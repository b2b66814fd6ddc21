// Package availability converts a clinician's recurring weekly schedule
// between its human-facing "hh:mm AM/PM" form and the normalized timestamps
// kept in the store, and enforces the window invariants before anything is
// committed.
package availability

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"fmt"
	"time"
)

// DisplayLayout is the 12-hour clock format used by clients, e.g. "09:30 AM".
const DisplayLayout = "03:04 PM"

// The store's native representation is a full timestamp, so a time of day is
// persisted combined with this reference date. The date carries no meaning
// and is stripped again on every read and comparison.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var dayLabels = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

// EncodeTimeOfDay parses a display string onto the reference date.
func EncodeTimeOfDay(display string) (time.Time, error) {
	parsed, err := time.Parse(DisplayLayout, display)
	if err != nil {
		return time.Time{}, err
	}
	return Normalize(parsed), nil
}

// DecodeTimeOfDay renders a stored timestamp back to the display form. The
// round trip through EncodeTimeOfDay is lossless for every valid time of day.
func DecodeTimeOfDay(stored time.Time) string {
	return Normalize(stored).Format(DisplayLayout)
}

// Normalize moves a timestamp onto the reference date, keeping only the time
// of day. Stored values must pass through here before any comparison so that
// whatever date the store attached never influences the result.
func Normalize(t time.Time) time.Time {
	return time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC,
	)
}

// EncodeWeeklySchedule validates and encodes a whole batch of display-form
// windows. The batch is atomic: the first violation rejects every window, and
// nothing is partially applied.
func EncodeWeeklySchedule(windows []requests.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	encoded := make([]models.AvailabilityWindow, 0, len(windows))
	for _, window := range windows {
		if !dayLabels[window.Day] {
			return nil, exceptions.ErrScheduleValidation(
				fmt.Errorf("unknown day %q", window.Day),
				constvars.ErrClientInvalidScheduleDay,
			)
		}

		start, err := EncodeTimeOfDay(window.Start)
		if err != nil {
			return nil, exceptions.ErrScheduleValidation(err, constvars.ErrClientInvalidScheduleTime)
		}
		end, err := EncodeTimeOfDay(window.End)
		if err != nil {
			return nil, exceptions.ErrScheduleValidation(err, constvars.ErrClientInvalidScheduleTime)
		}

		if !start.Before(end) {
			return nil, exceptions.ErrScheduleValidation(
				fmt.Errorf("window %s %s-%s is not chronological", window.Day, window.Start, window.End),
				constvars.ErrClientInvalidScheduleWindow,
			)
		}

		encoded = append(encoded, models.AvailabilityWindow{Day: window.Day, Start: start, End: end})
	}

	if err := validateNoOverlap(encoded); err != nil {
		return nil, err
	}
	return encoded, nil
}

// DecodeWeeklySchedule renders stored windows back to the display form.
func DecodeWeeklySchedule(windows []models.AvailabilityWindow) []responses.AvailabilityWindow {
	if len(windows) == 0 {
		return nil
	}
	decoded := make([]responses.AvailabilityWindow, 0, len(windows))
	for _, window := range windows {
		decoded = append(decoded, responses.AvailabilityWindow{
			Day:   window.Day,
			Start: DecodeTimeOfDay(window.Start),
			End:   DecodeTimeOfDay(window.End),
		})
	}
	return decoded
}

// validateNoOverlap rejects two windows on the same day whose open intervals
// intersect. Touching endpoints (one window ending exactly when the next
// starts) are allowed.
func validateNoOverlap(windows []models.AvailabilityWindow) error {
	for i := 0; i < len(windows); i++ {
		for j := i + 1; j < len(windows); j++ {
			if windows[i].Day != windows[j].Day {
				continue
			}
			if windows[i].Start.Before(windows[j].End) && windows[j].Start.Before(windows[i].End) {
				return exceptions.ErrScheduleValidation(
					fmt.Errorf("windows on %s overlap", windows[i].Day),
					constvars.ErrClientOverlappingScheduleWindow,
				)
			}
		}
	}
	return nil
}
