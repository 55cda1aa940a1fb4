package patient

import (
	"context"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// ListAll returns every patient with visits attached, the snapshot the
	// analytics functions consume.
	ListAll(ctx context.Context) ([]*Patient, error)

	AddVisit(ctx context.Context, v *Visit) error
	ListVisits(ctx context.Context, patientID uuid.UUID) ([]*Visit, error)
	DeleteVisit(ctx context.Context, id uuid.UUID) error
}
