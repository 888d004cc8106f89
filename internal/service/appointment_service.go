package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arogya-ai/internal/domain"
	"arogya-ai/internal/repository"
)

var (
	ErrInvalidAppointment  = errors.New("missing information for appointment")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentClosed   = errors.New("appointment can no longer be cancelled")
	ErrSlotTaken           = errors.New("time slot already booked")
)

// Turnos de media hora, con pausa de 13 a 14.
var AppointmentSlots = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

const slotLayout = "03:04 PM"

const maxAppointments = 200

type AppointmentRequest struct {
	DoctorID  string
	Specialty string
	Date      time.Time
	Time      string
	Type      domain.AppointmentType
	Notes     string
}

// AppointmentService agenda citas en el espacio de datos del usuario.
type AppointmentService struct {
	repo    repository.WellnessRepository
	doctors *DoctorDirectory
	now     func() time.Time
	logger  *zap.Logger
}

func NewAppointmentService(repo repository.WellnessRepository, doctors *DoctorDirectory, logger *zap.Logger) *AppointmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppointmentService{
		repo:    repo,
		doctors: doctors,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

// Book valida el pedido y guarda la cita confirmada.
// Fecha, especialidad y turno son obligatorios; el médico es opcional.
func (s *AppointmentService) Book(ctx context.Context, userID string, req AppointmentRequest) (domain.Appointment, error) {
	appt := domain.Appointment{
		ID:        uuid.NewString(),
		Specialty: strings.TrimSpace(req.Specialty),
		Date:      dayOf(req.Date),
		Time:      strings.TrimSpace(req.Time),
		Status:    domain.AppointmentConfirmed,
		Type:      req.Type,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: s.now(),
	}
	if appt.Type == "" {
		appt.Type = domain.AppointmentInPerson
	}
	if id := strings.TrimSpace(req.DoctorID); id != "" {
		doc, err := s.doctors.Get(id)
		if err != nil {
			return domain.Appointment{}, err
		}
		appt.DoctorID = doc.ID
		appt.DoctorName = doc.Name
		appt.Hospital = doc.Hospital
		appt.Address = doc.Location
		if appt.Specialty == "" {
			appt.Specialty = doc.Specialty
		}
	}

	switch {
	case req.Date.IsZero(), appt.Specialty == "", !slices.Contains(AppointmentSlots, appt.Time):
		return domain.Appointment{}, ErrInvalidAppointment
	case appt.Type != domain.AppointmentInPerson && appt.Type != domain.AppointmentVideo:
		return domain.Appointment{}, fmt.Errorf("%w: unknown type %q", ErrInvalidAppointment, appt.Type)
	case appt.Date.Before(dayOf(s.now())):
		return domain.Appointment{}, fmt.Errorf("%w: date is in the past", ErrInvalidAppointment)
	}

	appts, err := s.repo.LoadAppointments(ctx, userID)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("load appointments: %w", err)
	}
	for _, a := range appts {
		if a.Status == domain.AppointmentConfirmed && a.Date.Equal(appt.Date) && a.Time == appt.Time {
			return domain.Appointment{}, ErrSlotTaken
		}
	}
	appts = append(appts, appt)
	if len(appts) > maxAppointments {
		appts = appts[len(appts)-maxAppointments:]
	}
	if err := s.repo.SaveAppointments(ctx, userID, appts); err != nil {
		return domain.Appointment{}, fmt.Errorf("save appointments: %w", err)
	}
	s.logger.Info("appointment booked",
		zap.String("user_id", userID),
		zap.String("appointment_id", appt.ID),
		zap.String("type", string(appt.Type)),
	)
	return appt, nil
}

// List separa las citas en próximas (ascendente) y pasadas (la más reciente primero).
// Una cita confirmada de un día anterior a hoy se informa como completada.
func (s *AppointmentService) List(ctx context.Context, userID string) (upcoming, past []domain.Appointment, err error) {
	appts, err := s.repo.LoadAppointments(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load appointments: %w", err)
	}
	today := dayOf(s.now())
	upcoming = []domain.Appointment{}
	past = []domain.Appointment{}
	for _, a := range appts {
		if a.Status == domain.AppointmentConfirmed && a.Date.Before(today) {
			a.Status = domain.AppointmentCompleted
		}
		if a.Status == domain.AppointmentConfirmed {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return slotTime(upcoming[i]).Before(slotTime(upcoming[j])) })
	sort.SliceStable(past, func(i, j int) bool { return slotTime(past[i]).After(slotTime(past[j])) })
	return upcoming, past, nil
}

// Cancel marca la cita como cancelada. Solo las próximas confirmadas se pueden cancelar.
func (s *AppointmentService) Cancel(ctx context.Context, userID, id string) (domain.Appointment, error) {
	appts, err := s.repo.LoadAppointments(ctx, userID)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("load appointments: %w", err)
	}
	for i, a := range appts {
		if a.ID != id {
			continue
		}
		if a.Status != domain.AppointmentConfirmed || a.Date.Before(dayOf(s.now())) {
			return domain.Appointment{}, ErrAppointmentClosed
		}
		appts[i].Status = domain.AppointmentCancelled
		if err := s.repo.SaveAppointments(ctx, userID, appts); err != nil {
			return domain.Appointment{}, fmt.Errorf("save appointments: %w", err)
		}
		return appts[i], nil
	}
	return domain.Appointment{}, ErrAppointmentNotFound
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// slotTime combina el día con el turno para ordenar.
func slotTime(a domain.Appointment) time.Time {
	t, err := time.Parse(slotLayout, a.Time)
	if err != nil {
		return a.Date
	}
	return a.Date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}
