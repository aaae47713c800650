package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"animalbase/internal/domain/animals"
)

// Query espera una tabla animals(id serial, fullname text, age numeric).
// El orden por id hace de "orden del documento".
const Query = `
	SELECT fullname, age
	FROM animals
	ORDER BY id ASC
`

// Source lee los registros crudos desde Postgres en vez de animals.json.
type Source struct {
	db *sql.DB
}

func New(db *sql.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Load(ctx context.Context) ([]animals.RawAnimal, error) {
	rows, err := s.db.QueryContext(ctx, Query)
	if err != nil {
		return nil, fmt.Errorf("%w: query animals: %w", animals.ErrLoadFailed, err)
	}
	defer rows.Close()

	out := make([]animals.RawAnimal, 0)
	for rows.Next() {
		var (
			fullname sql.NullString
			age      sql.NullFloat64
		)
		if err := rows.Scan(&fullname, &age); err != nil {
			return nil, fmt.Errorf("%w: scan animal: %w", animals.ErrLoadFailed, err)
		}
		// NULL => string vacío / edad 0; Derive lo reporta como malformado.
		out = append(out, animals.RawAnimal{
			Fullname: fullname.String,
			Age:      age.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read animals: %w", animals.ErrLoadFailed, err)
	}
	return out, nil
}
