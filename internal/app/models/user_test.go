package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserApplyRating(t *testing.T) {
	t.Run("First Rating", func(t *testing.T) {
		user := &User{Role: RoleClinician}

		mean := user.ApplyRating("rater-1", 4)

		assert.Equal(t, 4.0, mean)
		assert.Len(t, user.RatedBy, 1)
		assert.Equal(t, 4.0, user.Rating)
	})

	t.Run("Second Rater Extends The Set", func(t *testing.T) {
		user := &User{Role: RoleClinician}
		user.ApplyRating("rater-1", 4)

		mean := user.ApplyRating("rater-2", 2)

		assert.Equal(t, 3.0, mean)
		assert.Len(t, user.RatedBy, 2)
	})

	t.Run("Same Rater Overwrites Instead Of Stacking", func(t *testing.T) {
		user := &User{Role: RoleClinician}
		user.ApplyRating("rater-1", 5)

		mean := user.ApplyRating("rater-1", 1)

		assert.Equal(t, 1.0, mean)
		assert.Len(t, user.RatedBy, 1, "a rater appears at most once")
		assert.Equal(t, 1, user.RatedBy[0].Score)
	})

	t.Run("Mean Reflects Overwrite Among Others", func(t *testing.T) {
		user := &User{Role: RoleClinician}
		user.ApplyRating("rater-1", 5)
		user.ApplyRating("rater-2", 3)
		user.ApplyRating("rater-1", 1)

		assert.Equal(t, 2.0, user.Rating)
		assert.Len(t, user.RatedBy, 2)
	})
}

func TestUserRatingMean(t *testing.T) {
	t.Run("Zero When Unrated", func(t *testing.T) {
		user := &User{}

		assert.Equal(t, 0.0, user.RatingMean())
	})

	t.Run("Fractional Mean", func(t *testing.T) {
		user := &User{RatedBy: []Rating{
			{RaterID: "a", Score: 5},
			{RaterID: "b", Score: 4},
		}}

		assert.Equal(t, 4.5, user.RatingMean())
	})
}

func TestParseRole(t *testing.T) {
	t.Run("Known Roles", func(t *testing.T) {
		for _, value := range []string{"admin", "patient", "donor", "clinician"} {
			role, ok := ParseRole(value)
			assert.True(t, ok)
			assert.Equal(t, Role(value), role)
		}
	})

	t.Run("Unknown Role", func(t *testing.T) {
		_, ok := ParseRole("doctor")
		assert.False(t, ok)
	})
}
