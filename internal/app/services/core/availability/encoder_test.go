package availability

import (
	"carelink-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTimeOfDay(t *testing.T) {
	t.Run("Parses Morning Time", func(t *testing.T) {
		encoded, err := EncodeTimeOfDay("09:30 AM")

		require.NoError(t, err)
		assert.Equal(t, 9, encoded.Hour())
		assert.Equal(t, 30, encoded.Minute())
		assert.Equal(t, 2000, encoded.Year(), "stored value should sit on the reference date")
	})

	t.Run("Parses Afternoon Time", func(t *testing.T) {
		encoded, err := EncodeTimeOfDay("05:15 PM")

		require.NoError(t, err)
		assert.Equal(t, 17, encoded.Hour())
		assert.Equal(t, 15, encoded.Minute())
	})

	t.Run("Rejects 24 Hour Format", func(t *testing.T) {
		_, err := EncodeTimeOfDay("17:15")

		assert.Error(t, err)
	})

	t.Run("Round Trip Is Lossless", func(t *testing.T) {
		for _, display := range []string{"12:00 AM", "12:00 PM", "09:05 AM", "11:59 PM"} {
			encoded, err := EncodeTimeOfDay(display)
			require.NoError(t, err)
			assert.Equal(t, display, DecodeTimeOfDay(encoded))
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("Strips Arbitrary Dates", func(t *testing.T) {
		stored := time.Date(2024, time.June, 14, 8, 45, 12, 999, time.UTC)

		normalized := Normalize(stored)

		assert.Equal(t, 2000, normalized.Year())
		assert.Equal(t, time.January, normalized.Month())
		assert.Equal(t, 8, normalized.Hour())
		assert.Equal(t, 45, normalized.Minute())
		assert.Equal(t, 0, normalized.Second(), "seconds should not survive normalization")
	})

	t.Run("Equal Times On Different Dates Compare Equal", func(t *testing.T) {
		a := time.Date(1999, time.March, 3, 10, 0, 0, 0, time.UTC)
		b := time.Date(2031, time.December, 25, 10, 0, 0, 0, time.UTC)

		assert.True(t, Normalize(a).Equal(Normalize(b)))
	})
}

func TestEncodeWeeklySchedule(t *testing.T) {
	t.Run("Valid Schedule", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
			{Day: "Monday", Start: "01:00 PM", End: "05:00 PM"},
			{Day: "Friday", Start: "10:00 AM", End: "02:00 PM"},
		}

		encoded, err := EncodeWeeklySchedule(windows)

		require.NoError(t, err)
		require.Len(t, encoded, 3)
		assert.Equal(t, "Monday", encoded[0].Day)
		assert.Equal(t, 9, encoded[0].Start.Hour())
		assert.Equal(t, 17, encoded[1].End.Hour())
	})

	t.Run("Unknown Day Rejects Whole Batch", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Monday", Start: "09:00 AM", End: "12:00 PM"},
			{Day: "Funday", Start: "09:00 AM", End: "12:00 PM"},
		}

		encoded, err := EncodeWeeklySchedule(windows)

		assert.Error(t, err)
		assert.Nil(t, encoded)
	})

	t.Run("Unparsable Time Rejects Whole Batch", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Tuesday", Start: "nine", End: "12:00 PM"},
		}

		encoded, err := EncodeWeeklySchedule(windows)

		assert.Error(t, err)
		assert.Nil(t, encoded)
	})

	t.Run("Start Must Precede End", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Wednesday", Start: "03:00 PM", End: "09:00 AM"},
		}

		_, err := EncodeWeeklySchedule(windows)

		assert.Error(t, err)
	})

	t.Run("Zero Length Window Rejected", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Wednesday", Start: "09:00 AM", End: "09:00 AM"},
		}

		_, err := EncodeWeeklySchedule(windows)

		assert.Error(t, err)
	})

	t.Run("Overlap On Same Day Rejected", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Thursday", Start: "09:00 AM", End: "01:00 PM"},
			{Day: "Thursday", Start: "12:00 PM", End: "03:00 PM"},
		}

		_, err := EncodeWeeklySchedule(windows)

		assert.Error(t, err)
	})

	t.Run("Same Times On Different Days Allowed", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Thursday", Start: "09:00 AM", End: "01:00 PM"},
			{Day: "Friday", Start: "09:00 AM", End: "01:00 PM"},
		}

		_, err := EncodeWeeklySchedule(windows)

		assert.NoError(t, err)
	})

	t.Run("Touching Windows Allowed", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Saturday", Start: "09:00 AM", End: "12:00 PM"},
			{Day: "Saturday", Start: "12:00 PM", End: "03:00 PM"},
		}

		_, err := EncodeWeeklySchedule(windows)

		assert.NoError(t, err)
	})

	t.Run("Empty Schedule Allowed", func(t *testing.T) {
		encoded, err := EncodeWeeklySchedule(nil)

		require.NoError(t, err)
		assert.Empty(t, encoded)
	})
}

func TestDecodeWeeklySchedule(t *testing.T) {
	t.Run("Decodes Stored Windows To Display Form", func(t *testing.T) {
		windows := []requests.AvailabilityWindow{
			{Day: "Monday", Start: "09:00 AM", End: "05:30 PM"},
		}
		encoded, err := EncodeWeeklySchedule(windows)
		require.NoError(t, err)

		decoded := DecodeWeeklySchedule(encoded)

		require.Len(t, decoded, 1)
		assert.Equal(t, "Monday", decoded[0].Day)
		assert.Equal(t, "09:00 AM", decoded[0].Start)
		assert.Equal(t, "05:30 PM", decoded[0].End)
	})

	t.Run("Nil For Empty Schedule", func(t *testing.T) {
		assert.Nil(t, DecodeWeeklySchedule(nil))
	})
}
