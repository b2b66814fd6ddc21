package responses

import "time"

// AvailabilityWindow is the display form handed back to clients, with the
// stored reference-date timestamps decoded to "hh:mm AM/PM".
type AvailabilityWindow struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type RatingEntry struct {
	RaterID string `json:"raterId"`
	Score   int    `json:"score"`
}

type DirectoryEntry struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Role            string               `json:"userRole"`
	Gender          string               `json:"gender,omitempty"`
	Phone           string               `json:"phone,omitempty"`
	EmergencyNumber string               `json:"emergencyNumber,omitempty"`
	ProfilePicture  string               `json:"profilePic,omitempty"`
	BloodType       string               `json:"bloodType,omitempty"`
	SelectedOrgans  []string             `json:"selectedOrgan,omitempty"`
	Specialization  string               `json:"specialization,omitempty"`
	Rating          float64              `json:"rating"`
	RatedBy         []RatingEntry        `json:"ratedBy,omitempty"`
	WeeklySchedule  []AvailabilityWindow `json:"weeklySchedule,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// PersonSummary is the display-safe projection used when appointments and
// donor requests resolve their references: never the full record, never
// credentials.
type PersonSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	ProfilePicture string `json:"profilePic,omitempty"`
}
