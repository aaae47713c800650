package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"animalbase/internal/platform/logger"
)

var ErrNotLoaded = errors.New("animals not loaded")

// Service es la única dueña de la Collection.
// Cada operación toma el lock completo: un handler corre hasta terminar antes del siguiente,
// igual que los eventos de la página.
type Service struct {
	mu sync.Mutex

	src Source
	log logger.Logger

	col      *Collection
	warnings []string
	loadErr  error
}

func NewService(src Source, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		src: src,
		log: log.With(map[string]any{"component": "animals"}),
	}
}

// Snapshot es una copia del estado para renderizar fuera del lock.
type Snapshot struct {
	Loaded  bool
	LoadErr error

	View     []Animal
	Types    []string
	Filter   string
	NextDir  map[SortKey]Direction
	Winners  []Animal
	Total    int
	Warnings []string
}

// ConflictView es la copia de un Conflict para el diálogo.
type ConflictView struct {
	Kind      ConflictKind
	Message   string
	Candidate Animal
	Winners   []Animal
}

type WinnerResult struct {
	Animal   Animal
	Accepted bool
	Conflict *ConflictView
}

// Load ejecuta la carga inicial. Si falla, el servicio queda en estado de error
// (Snapshot().LoadErr) y las operaciones devuelven ErrNotLoaded.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx)
}

// Reload descarta estrellas/ganadores y vuelve a cargar la fuente.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Service) loadLocked(ctx context.Context) error {
	if s.src == nil {
		s.col, s.warnings = nil, nil
		s.loadErr = fmt.Errorf("%w: no source configured", ErrLoadFailed)
		return s.loadErr
	}

	raws, err := s.src.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrInvalidPayload) && !errors.Is(err, ErrLoadFailed) {
			err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		s.col, s.warnings = nil, nil
		s.loadErr = err
		s.log.Error("load animals failed", map[string]any{"err": err})
		return err
	}

	rep := Build(raws)
	for _, w := range rep.Warnings {
		s.log.Warn("malformed animal record", map[string]any{"detail": w})
	}

	s.col = NewCollection(rep.Animals)
	s.warnings = rep.Warnings
	s.loadErr = nil

	s.log.Info("animals loaded", map[string]any{
		"count":    len(rep.Animals),
		"warnings": len(rep.Warnings),
	})
	return nil
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	if s.col == nil {
		err := s.loadErr
		if err == nil {
			err = ErrNotLoaded
		}
		return Snapshot{LoadErr: err}
	}

	next := make(map[SortKey]Direction, len(SortKeys))
	for _, k := range SortKeys {
		next[k] = s.col.NextDirection(k)
	}

	return Snapshot{
		Loaded:   true,
		View:     copyAnimals(s.col.View()),
		Types:    s.col.Types(),
		Filter:   s.col.ActiveFilter(),
		NextDir:  next,
		Winners:  copyAnimals(s.col.Winners()),
		Total:    len(s.col.All()),
		Warnings: append([]string(nil), s.warnings...),
	}
}

// All devuelve la lista completa en orden de carga.
func (s *Service) All() ([]Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return nil, ErrNotLoaded
	}
	return copyAnimals(s.col.All()), nil
}

func (s *Service) Filter(key string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return Snapshot{}, ErrNotLoaded
	}
	s.col.Filter(key)
	return s.snapshotLocked(), nil
}

// Sort devuelve la vista ordenada y la dirección aplicada.
func (s *Service) Sort(rawKey string) (Snapshot, Direction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return Snapshot{}, "", ErrNotLoaded
	}
	key, err := ParseSortKey(rawKey)
	if err != nil {
		return Snapshot{}, "", err
	}
	_, dir, err := s.col.Sort(key)
	if err != nil {
		return Snapshot{}, "", err
	}
	return s.snapshotLocked(), dir, nil
}

func (s *Service) ToggleStar(id string) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return Animal{}, ErrNotLoaded
	}
	a, err := s.col.ToggleStar(strings.TrimSpace(id))
	if err != nil {
		return Animal{}, err
	}
	return *a, nil
}

func (s *Service) ToggleWinner(id string) (WinnerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return WinnerResult{}, ErrNotLoaded
	}
	out, err := s.col.ToggleWinner(strings.TrimSpace(id))
	if err != nil {
		return WinnerResult{}, err
	}

	res := WinnerResult{Animal: *out.Animal, Accepted: out.Accepted}
	if out.Conflict != nil {
		res.Conflict = &ConflictView{
			Kind:      out.Conflict.Kind,
			Message:   out.Conflict.Kind.Message(),
			Candidate: *out.Conflict.Candidate,
			Winners:   copyAnimals(out.Conflict.Winners),
		}
		s.log.Debug("winner rejected", map[string]any{
			"animal": out.Animal.Label(),
			"kind":   string(out.Conflict.Kind),
		})
	}
	return res, nil
}

func (s *Service) RemoveWinner(id string) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.col == nil {
		return Animal{}, ErrNotLoaded
	}
	a, err := s.col.RemoveWinner(strings.TrimSpace(id))
	if err != nil {
		return Animal{}, err
	}
	return *a, nil
}

func copyAnimals(in []*Animal) []Animal {
	out := make([]Animal, 0, len(in))
	for _, a := range in {
		out = append(out, *a)
	}
	return out
}
