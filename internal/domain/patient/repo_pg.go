package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, full_name, age, gender, phone, created_at, updated_at`
const visitCols = `id, patient_id, visit_date, diagnosis, notes, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FullName, &p.Age, &p.Gender, &p.Phone,
		&p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func scanVisit(row pgx.Row) (*Visit, error) {
	var v Visit
	err := row.Scan(&v.ID, &v.PatientID, &v.Date, &v.Diagnosis, &v.Notes, &v.CreatedAt)
	return &v, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, full_name, age, gender, phone)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.FullName, p.Age, p.Gender, p.Phone)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	p.Visits, err = r.ListVisits(ctx, id)
	return p, err
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient SET full_name=$2, age=$3, gender=$4, phone=$5, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FullName, p.Age, p.Gender, p.Phone)
	return err
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patient ORDER BY full_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	return patients, total, rows.Err()
}

func (r *patientRepoPG) ListAll(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list all patients: %w", err)
	}
	defer rows.Close()

	var patients []*Patient
	byID := make(map[uuid.UUID]*Patient)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	vrows, err := r.pool.Query(ctx, `SELECT `+visitCols+` FROM patient_visit ORDER BY visit_date`)
	if err != nil {
		return nil, fmt.Errorf("list all visits: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		v, err := scanVisit(vrows)
		if err != nil {
			return nil, err
		}
		if p, ok := byID[v.PatientID]; ok {
			p.Visits = append(p.Visits, v)
		}
	}
	return patients, vrows.Err()
}

func (r *patientRepoPG) AddVisit(ctx context.Context, v *Visit) error {
	v.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient_visit (id, patient_id, visit_date, diagnosis, notes)
		VALUES ($1,$2,$3,$4,$5)`,
		v.ID, v.PatientID, v.Date, v.Diagnosis, v.Notes)
	return err
}

func (r *patientRepoPG) ListVisits(ctx context.Context, patientID uuid.UUID) ([]*Visit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+visitCols+` FROM patient_visit WHERE patient_id = $1 ORDER BY visit_date`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *patientRepoPG) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patient_visit WHERE id = $1`, id)
	return err
}
