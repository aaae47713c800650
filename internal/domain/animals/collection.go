package animals

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound       = errors.New("animal not found")
	ErrUnknownSortKey = errors.New("unknown sort key")
)

type SortKey string

const (
	SortName   SortKey = "name"
	SortDesc   SortKey = "desc"
	SortType   SortKey = "type"
	SortAge    SortKey = "age"
	SortStar   SortKey = "star"
	SortWinner SortKey = "winner"
)

// SortKeys en el orden de las columnas de la tabla.
var SortKeys = []SortKey{SortName, SortDesc, SortType, SortAge, SortStar, SortWinner}

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortKeys {
		if k == known {
			return k, nil
		}
	}
	return "", ErrUnknownSortKey
}

type Direction string

const (
	Desc Direction = "desc"
	Asc  Direction = "asc"
)

func (d Direction) flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Collection es el estado de la colección: lista completa + vista actual.
// No es segura para uso concurrente; el Service serializa el acceso.
type Collection struct {
	all  []*Animal
	view []*Animal
	byID map[string]*Animal

	filter string

	// próxima dirección por columna; ausente = Desc (primera activación)
	nextDir map[SortKey]Direction
}

func NewCollection(items []*Animal) *Collection {
	c := &Collection{
		all:     items,
		byID:    make(map[string]*Animal, len(items)),
		filter:  Wildcard,
		nextDir: map[SortKey]Direction{},
	}
	for _, a := range items {
		c.byID[a.ID] = a
	}
	c.view = c.copyAll()
	return c
}

func (c *Collection) copyAll() []*Animal {
	out := make([]*Animal, len(c.all))
	copy(out, c.all)
	return out
}

// All devuelve la lista completa en orden de carga.
func (c *Collection) All() []*Animal { return c.all }

// View devuelve la vista actual (filtrada/ordenada).
func (c *Collection) View() []*Animal { return c.view }

// ActiveFilter devuelve la clave de filtro vigente ("*" si no hay).
func (c *Collection) ActiveFilter() string { return c.filter }

func (c *Collection) Get(id string) (*Animal, error) {
	a, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// Types devuelve los tipos presentes, en orden de primera aparición.
func (c *Collection) Types() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, a := range c.all {
		if _, ok := seen[a.Type]; ok {
			continue
		}
		seen[a.Type] = struct{}{}
		out = append(out, a.Type)
	}
	return out
}

// Filter reemplaza la vista por los animales de tipo key (o todos con "*").
// El orden relativo es el de la lista completa.
func (c *Collection) Filter(key string) []*Animal {
	key = strings.TrimSpace(key)
	if key == "" || key == Wildcard {
		c.filter = Wildcard
		c.view = c.copyAll()
		return c.view
	}

	out := make([]*Animal, 0, len(c.all))
	for _, a := range c.all {
		if a.Type == key {
			out = append(out, a)
		}
	}
	c.filter = key
	c.view = out
	return c.view
}

// NextDirection es la dirección que usará la próxima activación de la columna.
func (c *Collection) NextDirection(key SortKey) Direction {
	if d, ok := c.nextDir[key]; ok {
		return d
	}
	return Desc
}

// Sort ordena la vista actual en el lugar por key y alterna la dirección de esa columna.
// La primera activación de cada columna es descendente. Orden estable.
func (c *Collection) Sort(key SortKey) ([]*Animal, Direction, error) {
	if _, err := ParseSortKey(string(key)); err != nil {
		return nil, "", err
	}

	dir := c.NextDirection(key)
	sort.SliceStable(c.view, func(i, j int) bool {
		if dir == Asc {
			return less(c.view[i], c.view[j], key)
		}
		return less(c.view[j], c.view[i], key)
	})

	c.nextDir[key] = dir.flip()
	return c.view, dir, nil
}

func less(a, b *Animal, key SortKey) bool {
	switch key {
	case SortName:
		return a.Name < b.Name
	case SortDesc:
		return a.Desc < b.Desc
	case SortType:
		return a.Type < b.Type
	case SortAge:
		return a.Age < b.Age
	case SortStar:
		return !a.Star && b.Star
	case SortWinner:
		return !a.Winner && b.Winner
	default:
		return false
	}
}

// ToggleStar invierte star. No tiene restricciones.
func (c *Collection) ToggleStar(id string) (*Animal, error) {
	a, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	a.Star = !a.Star
	return a, nil
}
