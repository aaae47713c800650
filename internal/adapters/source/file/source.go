package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// Source lee animals.json desde disco.
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Path() string { return s.path }

func (s *Source) Load(ctx context.Context) ([]animals.RawAnimal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", animals.ErrLoadFailed, err)
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", animals.ErrLoadFailed, s.path, err)
	}
	return animals.ParseRaw(b)
}

// debounce agrupa las ráfagas de eventos que producen los editores al guardar.
const debounce = 200 * time.Millisecond

// Watch llama onChange cada vez que el archivo se escribe o se reemplaza, hasta que ctx termine.
// Se vigila el directorio (y no el archivo) para sobrevivir a los rename de los editores.
func (s *Source) Watch(ctx context.Context, log logger.Logger, onChange func(context.Context)) error {
	if log == nil {
		log = logger.Nop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("file source: new watcher: %w", err)
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("file source: abs path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("file source: watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case <-fire:
				fire = nil
				log.Info("animals source changed, reloading", map[string]any{"path": s.path})
				onChange(ctx)

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watch error", map[string]any{"path": s.path, "err": err})
			}
		}
	}()

	return nil
}
