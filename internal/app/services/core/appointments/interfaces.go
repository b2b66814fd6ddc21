package appointments

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

// AppointmentFilter narrows a listing. Zero-valued fields are ignored; set
// fields are combined with AND.
type AppointmentFilter struct {
	ClinicianID string
	PatientID   string
	Status      models.AppointmentStatus
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	ListAppointments(ctx context.Context, filter AppointmentFilter) ([]responses.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindWithFilter(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
	DeleteByID(ctx context.Context, appointmentID string) (bool, error)
}
