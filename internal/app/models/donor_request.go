package models

type DonorRequestStatus string

const (
	DonorRequestStatusPending   DonorRequestStatus = "pending"
	DonorRequestStatusMatched   DonorRequestStatus = "matched"
	DonorRequestStatusFulfilled DonorRequestStatus = "fulfilled"
	DonorRequestStatusRejected  DonorRequestStatus = "rejected"
)

func ParseDonorRequestStatus(value string) (DonorRequestStatus, bool) {
	switch DonorRequestStatus(value) {
	case DonorRequestStatusPending, DonorRequestStatusMatched,
		DonorRequestStatusFulfilled, DonorRequestStatusRejected:
		return DonorRequestStatus(value), true
	}
	return "", false
}

// DonorRequest is a patient's solicitation for an organ, or for blood-only
// matching when RequestedOrgan is empty. BloodOnly is derived once at filing
// time and deliberately never recomputed afterwards, even if RequestedOrgan is
// later changed through an update.
type DonorRequest struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	PatientID      string             `json:"patientId" bson:"patientId"`
	DonorID        string             `json:"donorId,omitempty" bson:"donorId,omitempty"`
	RequestedOrgan string             `json:"requestedOrgan,omitempty" bson:"requestedOrgan"`
	BloodType      string             `json:"bloodType,omitempty" bson:"bloodType,omitempty"`
	BloodOnly      bool               `json:"bloodOnly" bson:"bloodOnly"`
	Status         DonorRequestStatus `json:"status" bson:"status"`
	TimeModel      `bson:",inline"`
}
