package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"animalbase/internal/adapters/source/file"
	"animalbase/internal/adapters/source/httpsource"
	"animalbase/internal/adapters/source/postgres"
	"animalbase/internal/domain/animals"
)

// KindPostgres es el valor de ANIMALS_SOURCE que selecciona la base (requiere DB_DSN).
const KindPostgres = "postgres"

// Selected es la fuente elegida. File != nil solo para fuentes en disco (vigilables).
type Selected struct {
	Source animals.Source
	File   *file.Source
	Kind   string
	Close  func() error
}

// Open elige la fuente:
// - "http://..." / "https://..." => HTTP
// - "postgres" + dsn            => Postgres
// - cualquier otra cosa         => path a un archivo JSON
func Open(ctx context.Context, target, dsn string) (Selected, error) {
	target = strings.TrimSpace(target)
	noop := func() error { return nil }

	switch {
	case strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://"):
		return Selected{Source: httpsource.New(target, 10*time.Second), Kind: "http", Close: noop}, nil

	case target == KindPostgres:
		if strings.TrimSpace(dsn) == "" {
			return Selected{}, fmt.Errorf("source %q requires DB_DSN", KindPostgres)
		}
		db, err := postgres.Open(ctx, dsn)
		if err != nil {
			return Selected{}, fmt.Errorf("open postgres: %w", err)
		}
		return Selected{Source: postgres.New(db), Kind: KindPostgres, Close: db.Close}, nil

	default:
		if target == "" {
			target = "animals.json"
		}
		f := file.New(target)
		return Selected{Source: f, File: f, Kind: "file", Close: noop}, nil
	}
}
