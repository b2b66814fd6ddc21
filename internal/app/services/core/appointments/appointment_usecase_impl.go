package appointments

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/directory"
	"carelink-service/internal/app/services/shared/eventqueue"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const appointmentDateLayout = "2006-01-02"

type AppointmentUsecaseImpl struct {
	Log                   *zap.Logger
	AppointmentRepository AppointmentRepository
	DirectoryRepository   directory.DirectoryRepository
	EventQueue            eventqueue.EventQueue
}

func NewAppointmentUsecase(
	logger *zap.Logger,
	appointmentRepository AppointmentRepository,
	directoryRepository directory.DirectoryRepository,
	eventQueue eventqueue.EventQueue,
) AppointmentUsecase {
	return &AppointmentUsecaseImpl{
		Log:                   logger,
		AppointmentRepository: appointmentRepository,
		DirectoryRepository:   directoryRepository,
		EventQueue:            eventQueue,
	}
}

// BookAppointment creates a pending appointment between an existing clinician
// and patient. Double bookings on the same slot are allowed: the ledger
// records what was requested and leaves clash resolution to the people
// involved.
func (uc *AppointmentUsecaseImpl) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	clinician, err := uc.findParticipant(ctx, request.ClinicianID, models.RoleClinician)
	if err != nil {
		return nil, err
	}
	patient, err := uc.findParticipant(ctx, request.PatientID, models.RolePatient)
	if err != nil {
		return nil, err
	}

	appointmentDate, err := time.ParseInLocation(appointmentDateLayout, request.Date, time.UTC)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	appointment := &models.Appointment{
		ClinicianID: clinician.ID,
		PatientID:   patient.ID,
		Date:        appointmentDate,
		Time:        request.Time,
		Status:      models.AppointmentStatusPending,
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.publishEvent(ctx, constvars.EventAppointmentBooked, appointment)

	return buildAppointmentResponse(appointment, clinician, patient), nil
}

func (uc *AppointmentUsecaseImpl) ListAppointments(ctx context.Context, filter AppointmentFilter) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	participantIDs := make([]string, 0, len(appointments)*2)
	for _, appointment := range appointments {
		participantIDs = append(participantIDs, appointment.ClinicianID, appointment.PatientID)
	}
	participants, err := uc.DirectoryRepository.FindByIDs(ctx, participantIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]
		result = append(result, *buildAppointmentResponse(
			appointment,
			lookupParticipant(participants, appointment.ClinicianID),
			lookupParticipant(participants, appointment.PatientID),
		))
	}
	return result, nil
}

func (uc *AppointmentUsecaseImpl) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("no appointment with id %s", appointmentID))
	}

	participants, err := uc.DirectoryRepository.FindByIDs(ctx, []string{appointment.ClinicianID, appointment.PatientID})
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponse(
		appointment,
		lookupParticipant(participants, appointment.ClinicianID),
		lookupParticipant(participants, appointment.PatientID),
	), nil
}

func (uc *AppointmentUsecaseImpl) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("no appointment with id %s", appointmentID))
	}

	if request.ClinicianID != "" && request.ClinicianID != appointment.ClinicianID {
		clinician, err := uc.findParticipant(ctx, request.ClinicianID, models.RoleClinician)
		if err != nil {
			return nil, err
		}
		appointment.ClinicianID = clinician.ID
	}
	if request.PatientID != "" && request.PatientID != appointment.PatientID {
		patient, err := uc.findParticipant(ctx, request.PatientID, models.RolePatient)
		if err != nil {
			return nil, err
		}
		appointment.PatientID = patient.ID
	}
	if request.Date != "" {
		appointmentDate, err := time.ParseInLocation(appointmentDateLayout, request.Date, time.UTC)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		appointment.Date = appointmentDate
	}
	if request.Time != "" {
		appointment.Time = request.Time
	}
	if request.Status != "" {
		status, ok := models.ParseAppointmentStatus(request.Status)
		if !ok {
			return nil, exceptions.ErrInvalidStatus(fmt.Errorf("unknown appointment status %q", request.Status))
		}
		appointment.Status = status
	}

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	participants, err := uc.DirectoryRepository.FindByIDs(ctx, []string{appointment.ClinicianID, appointment.PatientID})
	if err != nil {
		return nil, err
	}
	return buildAppointmentResponse(
		appointment,
		lookupParticipant(participants, appointment.ClinicianID),
		lookupParticipant(participants, appointment.PatientID),
	), nil
}

// CancelAppointment removes the record outright. Marking an appointment
// cancelled while keeping it on the ledger goes through UpdateAppointment
// with the cancelled status instead.
func (uc *AppointmentUsecaseImpl) CancelAppointment(ctx context.Context, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(fmt.Errorf("no appointment with id %s", appointmentID))
	}

	deleted, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s vanished before delete", appointmentID))
	}

	uc.publishEvent(ctx, constvars.EventAppointmentCancelled, appointment)
	return nil
}

func (uc *AppointmentUsecaseImpl) findParticipant(ctx context.Context, entryID string, role models.Role) (*models.User, error) {
	user, err := uc.DirectoryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != role {
		if role == models.RoleClinician {
			return nil, exceptions.ErrClinicianNotExist(fmt.Errorf("no clinician with id %s", entryID))
		}
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("no patient with id %s", entryID))
	}
	return user, nil
}

func (uc *AppointmentUsecaseImpl) publishEvent(ctx context.Context, eventType string, appointment *models.Appointment) {
	err := uc.EventQueue.Publish(ctx, constvars.QueueAppointmentEvents, eventType, appointment)
	if err != nil {
		uc.Log.Warn("failed to publish appointment event",
			zap.String("event", eventType),
			zap.String("appointmentID", appointment.ID),
			zap.Error(err),
		)
	}
}

func lookupParticipant(participants map[string]models.User, entryID string) *models.User {
	if user, ok := participants[entryID]; ok {
		return &user
	}
	return nil
}

func buildAppointmentResponse(appointment *models.Appointment, clinician, patient *models.User) *responses.Appointment {
	return &responses.Appointment{
		ID:        appointment.ID,
		Clinician: directory.BuildPersonSummary(clinician),
		Patient:   directory.BuildPersonSummary(patient),
		Date:      appointment.Date.Format(appointmentDateLayout),
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}
