package requests

type FileDonorRequest struct {
	PatientID      string `json:"patientId" validate:"required"`
	DonorID        string `json:"donorId,omitempty"`
	RequestedOrgan string `json:"requestedOrgan,omitempty"`
	BloodType      string `json:"bloodType,omitempty"`
}

type UpdateDonorRequest struct {
	DonorID        string  `json:"donorId,omitempty"`
	RequestedOrgan *string `json:"requestedOrgan,omitempty"`
	BloodType      *string `json:"bloodType,omitempty"`
	Status         string  `json:"status,omitempty"`
}
