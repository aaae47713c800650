package animals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrLoadFailed     = errors.New("load failed")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Source entrega los registros crudos de animals.json (archivo, HTTP, Postgres...).
type Source interface {
	Load(ctx context.Context) ([]RawAnimal, error)
}

// SourceFunc adapta una función a Source.
type SourceFunc func(ctx context.Context) ([]RawAnimal, error)

func (f SourceFunc) Load(ctx context.Context) ([]RawAnimal, error) { return f(ctx) }

// ParseRaw decodifica el documento; debe ser JSON válido y un array.
// Cada elemento se decodifica por separado: un elemento roto queda con
// valores por defecto y sus problemas en RawAnimal.Problems.
func ParseRaw(b []byte) ([]RawAnimal, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidPayload)
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: not valid json", ErrInvalidPayload)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a json array", ErrInvalidPayload)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	out := make([]RawAnimal, 0, len(elems))
	for _, e := range elems {
		out = append(out, decodeRaw(e))
	}
	return out, nil
}

func decodeRaw(b json.RawMessage) RawAnimal {
	var raw RawAnimal

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		raw.Problems = append(raw.Problems, fmt.Sprintf("element is not an object: %.40s", b))
		return raw
	}

	if v, ok := fields["fullname"]; ok {
		if err := json.Unmarshal(v, &raw.Fullname); err != nil {
			raw.Problems = append(raw.Problems, fmt.Sprintf("fullname is not a string: %.40s", v))
		}
	}
	if v, ok := fields["age"]; ok {
		if err := json.Unmarshal(v, &raw.Age); err != nil {
			raw.Problems = append(raw.Problems, fmt.Sprintf("age is not a number: %.40s", v))
		}
	}
	return raw
}

// LoadReport es el resultado de una carga: animales en orden de entrada + warnings.
type LoadReport struct {
	Animals  []*Animal
	Warnings []string
}

// Build mapea cada registro de forma independiente y preserva el orden.
func Build(raws []RawAnimal) LoadReport {
	rep := LoadReport{Animals: make([]*Animal, 0, len(raws))}
	for i, raw := range raws {
		a, warns := Derive(raw)
		for _, w := range warns {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("record %d: %s", i, w))
		}
		rep.Animals = append(rep.Animals, a)
	}
	return rep
}
