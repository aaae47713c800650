package animals

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultDesc es la descripción que recibe un animal sin adjetivo.
	DefaultDesc = "-unknown animal-"

	// Wildcard es la clave de filtro que devuelve la lista completa.
	Wildcard = "*"

	// MaxAge es la mayor edad aceptada; por encima se usa 0 con warning.
	MaxAge = math.MaxInt32
)

// Animal es un registro de la colección.
// Los punteros a Animal se comparten entre la lista completa y la vista actual,
// así que star/winner se mutan en el lugar.
type Animal struct {
	// ID es el handle de fila (no viene en el JSON, se asigna al cargar).
	ID string

	Name string
	Desc string
	Type string
	Age  int

	Star   bool
	Winner bool
}

// Label es el texto que usa el diálogo de conflicto: "Rex the Good Dog".
func (a Animal) Label() string {
	return fmt.Sprintf("%s the %s %s", a.Name, a.Desc, a.Type)
}

// RawAnimal es un elemento del documento animals.json.
type RawAnimal struct {
	Fullname string  `json:"fullname"`
	Age      float64 `json:"age"`

	// Problems son los campos que no se pudieron decodificar; Derive los reporta como warnings.
	Problems []string `json:"-"`
}

// newAnimal devuelve un Animal con los valores por defecto.
func newAnimal() *Animal {
	return &Animal{
		ID:   uuid.NewString(),
		Desc: DefaultDesc,
	}
}

// Derive arma un Animal desde el registro crudo.
// fullname se parte por espacios: token[0] nombre, token[2] desc, token[3] tipo.
// Si faltan tokens o la edad es inválida se usan los defaults y se devuelve un warning;
// nunca falla, para no cortar la carga del resto.
func Derive(raw RawAnimal) (*Animal, []string) {
	a := newAnimal()
	warnings := append([]string(nil), raw.Problems...)

	texts := strings.Split(raw.Fullname, " ")
	if len(texts) < 4 {
		warnings = append(warnings, fmt.Sprintf("fullname %q has %d tokens, want at least 4", raw.Fullname, len(texts)))
	}

	if len(texts) > 0 {
		a.Name = texts[0]
	}
	if len(texts) > 2 && texts[2] != "" {
		a.Desc = texts[2]
	}
	if len(texts) > 3 {
		a.Type = texts[3]
	}

	switch {
	case math.IsNaN(raw.Age) || math.IsInf(raw.Age, 0):
		warnings = append(warnings, fmt.Sprintf("age of %q is not a number", raw.Fullname))
	case raw.Age < 0:
		warnings = append(warnings, fmt.Sprintf("age of %q is negative (%v)", raw.Fullname, raw.Age))
	case raw.Age > MaxAge:
		warnings = append(warnings, fmt.Sprintf("age of %q is out of range (%v)", raw.Fullname, raw.Age))
	default:
		a.Age = int(raw.Age)
		if float64(a.Age) != raw.Age {
			warnings = append(warnings, fmt.Sprintf("age of %q truncated from %v to %d", raw.Fullname, raw.Age, a.Age))
		}
	}

	return a, warnings
}
