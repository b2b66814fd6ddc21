package requests

type BookAppointment struct {
	ClinicianID string `json:"clinicianId" validate:"required"`
	PatientID   string `json:"patientId" validate:"required"`
	Date        string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
}

type UpdateAppointment struct {
	ClinicianID string `json:"clinicianId,omitempty"`
	PatientID   string `json:"patientId,omitempty"`
	Date        string `json:"appointmentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time        string `json:"time,omitempty"`
	Status      string `json:"status,omitempty"`
}
