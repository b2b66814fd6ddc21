package constvars

const (
	RegisterSuccessMessage = "Created successfully"
	LoginSuccessMessage    = "Login successfully"
	LogoutSuccessMessage   = "Logout successfully"

	ListEntriesSuccessMessage     = "Directory listing"
	GetEntrySuccessMessage        = "Directory entry detail"
	UpdateEntrySuccessMessage     = "Directory entry updated"
	DeleteEntrySuccessMessage     = "Directory entry deleted"
	SetAvailabilitySuccessMessage = "Weekly availability updated"
	SubmitRatingSuccessMessage    = "Rating submitted"

	BookAppointmentSuccessMessage   = "Appointment booked"
	ListAppointmentsSuccessMessage  = "Appointment listing"
	GetAppointmentSuccessMessage    = "Appointment detail"
	UpdateAppointmentSuccessMessage = "Appointment updated"
	CancelAppointmentSuccessMessage = "Appointment deleted"

	FileDonorRequestSuccessMessage     = "Request sent"
	ListDonorRequestsSuccessMessage    = "Donor request listing"
	GetDonorRequestSuccessMessage      = "Donor request detail"
	UpdateDonorRequestSuccessMessage   = "Donor request updated"
	WithdrawDonorRequestSuccessMessage = "Donor request deleted"
)
