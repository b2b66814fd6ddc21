package constvars

type ContextKey string

const (
	ResourceAuth          = "auth"
	ResourceClinicians    = "clinicians"
	ResourcePatients      = "patients"
	ResourceDonors        = "donors"
	ResourceAppointments  = "appointments"
	ResourceDonorRequests = "donor-requests"
)

const (
	URLParamEntryID        = "entryID"
	URLParamAppointmentID  = "appointmentID"
	URLParamDonorRequestID = "requestID"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionDonorRequests = "donor_requests"
)

const (
	MongoIndexUserEmail           = "uniq_email"
	MongoIndexDonorRequestPerPair = "uniq_patient_organ"
)

const (
	ContextSessionDataKey ContextKey = "session_data"
	ContextSessionIDKey   ContextKey = "session_id"
)

const (
	RatingScoreMin = 1
	RatingScoreMax = 5
)

var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png"}

const (
	QueueAppointmentEvents  = "carelink.appointment.events"
	QueueDonorRequestEvents = "carelink.donor_request.events"
)

const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
	EventDonorRequestFiled    = "donor_request.filed"
	EventDonorRequestWithdrew = "donor_request.withdrawn"
)
