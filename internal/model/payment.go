package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records a charge for an appointment. Amount is in cents.
type Payment struct {
	ID            int           `db:"id" json:"id"`
	PatientID     int           `db:"patient_id" json:"patientId"`
	AppointmentID int           `db:"appointment_id" json:"appointmentId"`
	Amount        int           `db:"amount" json:"amount"`
	Status        PaymentStatus `db:"status" json:"status"`
	PaymentMethod *string       `db:"payment_method" json:"paymentMethod,omitempty"`
	TransactionID *string       `db:"transaction_id" json:"transactionId,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
}

type CreatePaymentRequest struct {
	PatientID     int     `json:"patientId" binding:"required"`
	AppointmentID int     `json:"appointmentId" binding:"required"`
	Amount        int     `json:"amount" binding:"required,min=1"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaymentMethod *string `json:"paymentMethod"`
	TransactionID *string `json:"transactionId"`
}

type UpdatePaymentRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaymentMethod *string `json:"paymentMethod"`
	TransactionID *string `json:"transactionId"`
}
