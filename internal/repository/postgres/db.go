// Package postgres implements the repository contracts on PostgreSQL.
// It is the durable alternative to the in-memory store, selected with
// store.driver=postgres. Merge semantics for partial updates match the
// memory store: a patch is applied to the current row inside a transaction.
package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/wizardXds/medicare/internal/config"
	"github.com/wizardXds/medicare/internal/repository"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() repository.UserRepository                   { return &userRepository{db: s.db} }
func (s *Store) Hospitals() repository.HospitalRepository           { return &hospitalRepository{db: s.db} }
func (s *Store) Appointments() repository.AppointmentRepository     { return &appointmentRepository{db: s.db} }
func (s *Store) MedicalRecords() repository.MedicalRecordRepository { return &medicalRecordRepository{db: s.db} }
func (s *Store) Prescriptions() repository.PrescriptionRepository   { return &prescriptionRepository{db: s.db} }
func (s *Store) Messages() repository.MessageRepository             { return &messageRepository{db: s.db} }
func (s *Store) Payments() repository.PaymentRepository             { return &paymentRepository{db: s.db} }

func (s *Store) Close() error {
	return s.db.Close()
}
