// Package memory implements the repository contracts on in-process maps.
// Each entity kind gets its own keyed collection with an auto-incrementing
// id counter; records live for the lifetime of the process. An RWMutex per
// collection keeps operations atomic under concurrent request handling.
package memory

import "github.com/wizardXds/medicare/internal/repository"

type Store struct {
	users          *userRepository
	hospitals      *hospitalRepository
	appointments   *appointmentRepository
	medicalRecords *medicalRecordRepository
	prescriptions  *prescriptionRepository
	messages       *messageRepository
	payments       *paymentRepository
}

// NewStore returns an empty store. Construct one per process (or per test)
// and inject it; there is no package-level singleton.
func NewStore() *Store {
	return &Store{
		users:          newUserRepository(),
		hospitals:      newHospitalRepository(),
		appointments:   newAppointmentRepository(),
		medicalRecords: newMedicalRecordRepository(),
		prescriptions:  newPrescriptionRepository(),
		messages:       newMessageRepository(),
		payments:       newPaymentRepository(),
	}
}

func (s *Store) Users() repository.UserRepository                   { return s.users }
func (s *Store) Hospitals() repository.HospitalRepository           { return s.hospitals }
func (s *Store) Appointments() repository.AppointmentRepository     { return s.appointments }
func (s *Store) MedicalRecords() repository.MedicalRecordRepository { return s.medicalRecords }
func (s *Store) Prescriptions() repository.PrescriptionRepository   { return s.prescriptions }
func (s *Store) Messages() repository.MessageRepository             { return s.messages }
func (s *Store) Payments() repository.PaymentRepository             { return s.payments }
