package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type AppointmentType string

const (
	AppointmentTypeInPerson AppointmentType = "in-person"
	AppointmentTypeVideo    AppointmentType = "video"
	AppointmentTypePhone    AppointmentType = "phone"
)

// DefaultAppointmentDuration is applied when a booking omits the duration,
// in minutes.
const DefaultAppointmentDuration = 30

type Appointment struct {
	ID        int               `db:"id" json:"id"`
	PatientID int               `db:"patient_id" json:"patientId"`
	DoctorID  int               `db:"doctor_id" json:"doctorId"`
	Date      string            `db:"date" json:"date"`
	Time      string            `db:"time" json:"time"`
	Duration  int               `db:"duration" json:"duration"`
	Status    AppointmentStatus `db:"status" json:"status"`
	Type      AppointmentType   `db:"type" json:"type"`
	Notes     *string           `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}

type CreateAppointmentRequest struct {
	PatientID int     `json:"patientId" binding:"required"`
	DoctorID  int     `json:"doctorId" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Duration  *int    `json:"duration" binding:"omitempty,min=5"`
	Status    string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Type      string  `json:"type" binding:"omitempty,oneof=in-person video phone"`
	Notes     *string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Duration *int    `json:"duration" binding:"omitempty,min=5"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Type     *string `json:"type" binding:"omitempty,oneof=in-person video phone"`
	Notes    *string `json:"notes"`
}
