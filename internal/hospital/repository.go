package hospital

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	List(ctx context.Context, specialization string) ([]Hospital, error)
	Count(ctx context.Context) (int, error)
	SeedDefaults(ctx context.Context) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) List(ctx context.Context, specialization string) ([]Hospital, error) {
	query := `SELECT id, name, location, contact_info, specialization FROM hospitals`
	args := []interface{}{}
	if specialization != "" {
		query += ` WHERE specialization = $1`
		args = append(args, specialization)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing hospitals: %w", err)
	}
	defer rows.Close()

	hospitals := []Hospital{}
	for rows.Next() {
		var h Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.ContactInfo, &h.Specialization); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM hospitals`).Scan(&count)
	return count, err
}

// SeedDefaults loads the directory with the default entries. Callers
// should seed only when Count reports an empty table.
func (r *postgresRepo) SeedDefaults(ctx context.Context) error {
	defaults := []Hospital{
		{Name: "City General Hospital", Location: "Downtown", ContactInfo: "123-456-7890", Specialization: "General"},
		{Name: "Skin Care Clinic", Location: "Westside", ContactInfo: "123-456-7891", Specialization: "Dermatologist"},
		{Name: "Heart Center", Location: "Eastside", ContactInfo: "123-456-7892", Specialization: "Cardiologist"},
		{Name: "ENT Specialists", Location: "Northside", ContactInfo: "123-456-7893", Specialization: "ENT"},
	}
	for _, h := range defaults {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO hospitals (name, location, contact_info, specialization) VALUES ($1, $2, $3, $4)`,
			h.Name, h.Location, h.ContactInfo, h.Specialization,
		)
		if err != nil {
			return fmt.Errorf("seeding hospitals: %w", err)
		}
	}
	return nil
}
