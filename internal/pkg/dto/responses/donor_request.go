package responses

import "time"

type DonorRequest struct {
	ID             string         `json:"id"`
	Patient        *PersonSummary `json:"patient,omitempty"`
	Donor          *PersonSummary `json:"donor,omitempty"`
	RequestedOrgan string         `json:"requestedOrgan,omitempty"`
	BloodType      string         `json:"bloodType,omitempty"`
	BloodOnly      bool           `json:"bloodOnly"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type RatingResult struct {
	ClinicianID string  `json:"clinicianId"`
	Rating      float64 `json:"rating"`
	RatedBy     int     `json:"ratedBy"`
}
