package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	patients PatientRepository
}

func NewService(patients PatientRepository) *Service {
	return &Service{patients: patients}
}

func validatePatient(p *Patient) error {
	if strings.TrimSpace(p.FullName) == "" {
		return fmt.Errorf("full_name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s (must be male, female or other)", p.Gender)
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// Snapshot returns every patient with visits attached.
func (s *Service) Snapshot(ctx context.Context) ([]*Patient, error) {
	return s.patients.ListAll(ctx)
}

func (s *Service) AddVisit(ctx context.Context, v *Visit) error {
	if v.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if _, err := s.patients.GetByID(ctx, v.PatientID); err != nil {
		return fmt.Errorf("patient %s: %w", v.PatientID, err)
	}
	if v.Date.IsZero() {
		v.Date = time.Now()
	}
	return s.patients.AddVisit(ctx, v)
}

func (s *Service) ListVisits(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	return s.patients.ListVisits(ctx, patientID)
}

func (s *Service) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	return s.patients.DeleteVisit(ctx, id)
}
