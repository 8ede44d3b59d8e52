package model

import "time"

// MedicalRecord is an entry in a patient's chart: consultation notes,
// a lab result, an imaging report and so on.
type MedicalRecord struct {
	ID          int       `db:"id" json:"id"`
	PatientID   int       `db:"patient_id" json:"patientId"`
	DoctorID    int       `db:"doctor_id" json:"doctorId"`
	RecordType  string    `db:"record_type" json:"recordType"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        string    `db:"date" json:"date"`
	FileURL     *string   `db:"file_url" json:"fileUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CreateMedicalRecordRequest struct {
	PatientID   int     `json:"patientId" binding:"required"`
	DoctorID    int     `json:"doctorId" binding:"required"`
	RecordType  string  `json:"recordType" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	FileURL     *string `json:"fileUrl"`
}
