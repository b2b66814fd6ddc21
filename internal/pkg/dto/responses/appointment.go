package responses

import "time"

type Appointment struct {
	ID        string         `json:"id"`
	Clinician *PersonSummary `json:"clinician,omitempty"`
	Patient   *PersonSummary `json:"patient,omitempty"`
	Date      string         `json:"appointmentDate"`
	Time      string         `json:"time"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
