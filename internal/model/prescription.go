package model

import "time"

type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "active"
	PrescriptionStatusCompleted PrescriptionStatus = "completed"
	PrescriptionStatusCancelled PrescriptionStatus = "cancelled"
)

type Prescription struct {
	ID             int                `db:"id" json:"id"`
	PatientID      int                `db:"patient_id" json:"patientId"`
	DoctorID       int                `db:"doctor_id" json:"doctorId"`
	MedicationName string             `db:"medication_name" json:"medicationName"`
	Dosage         string             `db:"dosage" json:"dosage"`
	Frequency      string             `db:"frequency" json:"frequency"`
	StartDate      string             `db:"start_date" json:"startDate"`
	EndDate        *string            `db:"end_date" json:"endDate,omitempty"`
	Instructions   *string            `db:"instructions" json:"instructions,omitempty"`
	Status         PrescriptionStatus `db:"status" json:"status"`
	CreatedAt      time.Time          `db:"created_at" json:"createdAt"`
}

type CreatePrescriptionRequest struct {
	PatientID      int     `json:"patientId" binding:"required"`
	DoctorID       int     `json:"doctorId" binding:"required"`
	MedicationName string  `json:"medicationName" binding:"required"`
	Dosage         string  `json:"dosage" binding:"required"`
	Frequency      string  `json:"frequency" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required"`
	EndDate        *string `json:"endDate"`
	Instructions   *string `json:"instructions"`
	Status         string  `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}

type UpdatePrescriptionRequest struct {
	MedicationName *string `json:"medicationName"`
	Dosage         *string `json:"dosage"`
	Frequency      *string `json:"frequency"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	Instructions   *string `json:"instructions"`
	Status         *string `json:"status" binding:"omitempty,oneof=active completed cancelled"`
}
