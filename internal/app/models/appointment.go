package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusComplete  AppointmentStatus = "complete"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(value string) (AppointmentStatus, bool) {
	switch AppointmentStatus(value) {
	case AppointmentStatusPending, AppointmentStatusComplete, AppointmentStatusCancelled:
		return AppointmentStatus(value), true
	}
	return "", false
}

// Appointment is one booked meeting between a clinician and a patient. Status
// transitions are caller driven; there is no automatic expiry. Cancellation
// via status is a soft state, distinct from hard removal of the record.
type Appointment struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	ClinicianID string            `json:"clinicianId" bson:"clinicianId"`
	PatientID   string            `json:"patientId" bson:"patientId"`
	Date        time.Time         `json:"appointmentDate" bson:"appointmentDate"`
	Time        string            `json:"time" bson:"time"`
	Status      AppointmentStatus `json:"status" bson:"status"`
	TimeModel   `bson:",inline"`
}
