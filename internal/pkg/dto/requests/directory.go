package requests

// AvailabilityWindow is the display form of one recurring weekly slot. Start
// and End use the 12-hour "hh:mm AM/PM" format.
type AvailabilityWindow struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// UpdateEntry is a partial profile update: only supplied fields change, and
// fields the request omits keep their prior values. Pointer-typed fields
// distinguish "not supplied" from "set to empty".
type UpdateEntry struct {
	Name            string  `json:"name,omitempty"`
	Email           string  `json:"email,omitempty" validate:"omitempty,email"`
	Gender          *string `json:"gender,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	EmergencyNumber *string `json:"emergencyNumber,omitempty"`
	BloodType       *string `json:"bloodType,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`

	SelectedOrgans []string `json:"selectedOrgan,omitempty"`

	// ProfilePicture is a base64 data URL; the decoded payload and its
	// extension are filled in by the controller after validation.
	ProfilePicture          string `json:"profilePic,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`

	WeeklyAvailability []AvailabilityWindow `json:"weeklySchedule,omitempty" validate:"omitempty,dive"`
}

type SetWeeklyAvailability struct {
	Windows []AvailabilityWindow `json:"weeklySchedule" validate:"required,dive"`
}
