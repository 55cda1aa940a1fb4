package patient

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the recognized set for the demographics breakdown.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Age       int       `db:"age" json:"age"`
	Gender    Gender    `db:"gender" json:"gender"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Visits is populated on full-snapshot reads, ordered by visit date.
	Visits []*Visit `db:"-" json:"visits,omitempty"`
}

// Visit maps to the patient_visit table. Diagnosis is free text; an empty
// or absent diagnosis is skipped by the frequency analytics.
type Visit struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Date      time.Time `db:"visit_date" json:"date"`
	Diagnosis *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
