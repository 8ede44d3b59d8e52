package repository

import (
	"context"
	"errors"

	"github.com/wizardXds/medicare/internal/model"
)

// ErrNotFound is returned by every repository when the requested id does
// not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id int) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]*model.User, error)
	Update(ctx context.Context, id int, patch *model.UpdateUserRequest) (*model.User, error)
}

type HospitalRepository interface {
	Create(ctx context.Context, hospital *model.Hospital) error
	Get(ctx context.Context, id int) (*model.Hospital, error)
	List(ctx context.Context) ([]*model.Hospital, error)
	Update(ctx context.Context, id int, patch *model.UpdateHospitalRequest) (*model.Hospital, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id int) (*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID int) ([]*model.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]*model.Appointment, error)
	Update(ctx context.Context, id int, patch *model.UpdateAppointmentRequest) (*model.Appointment, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	Get(ctx context.Context, id int) (*model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int) ([]*model.MedicalRecord, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *model.Prescription) error
	Get(ctx context.Context, id int) (*model.Prescription, error)
	ListByPatient(ctx context.Context, patientID int) ([]*model.Prescription, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]*model.Prescription, error)
	Update(ctx context.Context, id int, patch *model.UpdatePrescriptionRequest) (*model.Prescription, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	Get(ctx context.Context, id int) (*model.Message, error)
	ListByUser(ctx context.Context, userID int) ([]*model.Message, error)
	MarkAsRead(ctx context.Context, id int) (*model.Message, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Get(ctx context.Context, id int) (*model.Payment, error)
	ListByPatient(ctx context.Context, patientID int) ([]*model.Payment, error)
	Update(ctx context.Context, id int, patch *model.UpdatePaymentRequest) (*model.Payment, error)
}

// Store bundles one repository per entity kind behind a single backend.
type Store interface {
	Users() UserRepository
	Hospitals() HospitalRepository
	Appointments() AppointmentRepository
	MedicalRecords() MedicalRecordRepository
	Prescriptions() PrescriptionRepository
	Messages() MessageRepository
	Payments() PaymentRepository
}
