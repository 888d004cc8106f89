package domain

import "time"

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type AppointmentType string

const (
	AppointmentInPerson AppointmentType = "in-person"
	AppointmentVideo    AppointmentType = "video"
)

// Appointment es una cita guardada en el espacio del usuario.
// Date es el día (UTC, medianoche) y Time el turno tal como se muestra ("10:00 AM").
type Appointment struct {
	ID         string            `json:"id"`
	DoctorID   string            `json:"doctor_id,omitempty"`
	DoctorName string            `json:"doctor_name,omitempty"`
	Specialty  string            `json:"specialty"`
	Hospital   string            `json:"hospital,omitempty"`
	Address    string            `json:"address,omitempty"`
	Date       time.Time         `json:"date"`
	Time       string            `json:"time"`
	Status     AppointmentStatus `json:"status"`
	Type       AppointmentType   `json:"type"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
