package models

import "time"

// Role discriminates the single directory entry shape shared by every person
// in the system. Which optional fields are meaningful depends on the role:
// clinicians carry Specialization, WeeklySchedule and ratings, donors and
// patients carry BloodType and SelectedOrgans.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePatient   Role = "patient"
	RoleDonor     Role = "donor"
	RoleClinician Role = "clinician"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RolePatient, RoleDonor, RoleClinician:
		return Role(value), true
	}
	return "", false
}

// Rating is one rater's latest score for a clinician. A rater appears at most
// once in a clinician's RatedBy set.
type Rating struct {
	RaterID string `json:"raterId" bson:"raterId"`
	Score   int    `json:"score" bson:"score"`
}

// AvailabilityWindow is one recurring weekly slot. Start and End hold only a
// time of day; they are stored combined with a fixed reference date because
// the store's native representation is a full timestamp. The date part carries
// no meaning and is normalized away on read.
type AvailabilityWindow struct {
	Day   string    `json:"day" bson:"day"`
	Start time.Time `json:"start" bson:"start"`
	End   time.Time `json:"end" bson:"end"`
}

type User struct {
	ID              string               `json:"id" bson:"_id,omitempty"`
	Name            string               `json:"name" bson:"name"`
	Email           string               `json:"email" bson:"email"`
	Password        string               `json:"-" bson:"password"`
	Role            Role                 `json:"userRole" bson:"userRole"`
	Gender          string               `json:"gender,omitempty" bson:"gender,omitempty"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty"`
	EmergencyNumber string               `json:"emergencyNumber,omitempty" bson:"emergencyNumber,omitempty"`
	ProfilePicture  string               `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	BloodType       string               `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	SelectedOrgans  []string             `json:"selectedOrgan,omitempty" bson:"selectedOrgan,omitempty"`
	Specialization  string               `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Rating          float64              `json:"rating" bson:"rating"`
	RatedBy         []Rating             `json:"ratedBy,omitempty" bson:"ratedBy,omitempty"`
	WeeklySchedule  []AvailabilityWindow `json:"weeklySchedule,omitempty" bson:"weeklySchedule,omitempty"`
	TimeModel       `bson:",inline"`
}

// ApplyRating replaces the rater's existing entry (or appends a new one) and
// recomputes the mean over the full set. The mean is always recomputed from
// scratch rather than maintained incrementally: entries can be overwritten,
// and a running sum would drift on overwrite.
func (u *User) ApplyRating(raterID string, score int) float64 {
	replaced := false
	for i := range u.RatedBy {
		if u.RatedBy[i].RaterID == raterID {
			u.RatedBy[i].Score = score
			replaced = true
			break
		}
	}
	if !replaced {
		u.RatedBy = append(u.RatedBy, Rating{RaterID: raterID, Score: score})
	}
	u.Rating = u.RatingMean()
	return u.Rating
}

// RatingMean is the arithmetic mean over all current rating entries, zero when
// the clinician has none.
func (u *User) RatingMean() float64 {
	if len(u.RatedBy) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range u.RatedBy {
		sum += entry.Score
	}
	return float64(sum) / float64(len(u.RatedBy))
}
