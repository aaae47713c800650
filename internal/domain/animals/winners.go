package animals

// MaxWinners es el cupo total de ganadores.
const MaxWinners = 2

type ConflictKind string

const (
	ConflictType  ConflictKind = "type"
	ConflictTotal ConflictKind = "total"
)

// Message es el texto que muestra el diálogo de conflicto.
func (k ConflictKind) Message() string {
	switch k {
	case ConflictType:
		return "You can only have one winner of a type"
	case ConflictTotal:
		return "You can only have two winners in total"
	default:
		return ""
	}
}

// Conflict describe un intento de ganador rechazado y los ganadores que lo bloquean.
// Cada uno puede quitarse con RemoveWinner para liberar el cupo.
type Conflict struct {
	Kind      ConflictKind
	Candidate *Animal
	Winners   []*Animal
}

// Outcome es el resultado de ToggleWinner. Conflict != nil => rechazado.
type Outcome struct {
	Animal   *Animal
	Accepted bool
	Conflict *Conflict
}

// Winners devuelve los ganadores actuales, en orden de la lista completa.
// Se calcula sobre la lista completa y no sobre la vista, así el invariante
// (máx. 2, uno por tipo) vale aunque haya un filtro activo.
func (c *Collection) Winners() []*Animal {
	out := make([]*Animal, 0, MaxWinners)
	for _, a := range c.all {
		if a.Winner {
			out = append(out, a)
		}
	}
	return out
}

// ToggleWinner aplica las reglas de ganadores:
// - apagar siempre se acepta
// - con 2 ganadores => conflicto "total"
// - con un ganador del mismo tipo => conflicto "type"
// - si no, se marca como ganador
func (c *Collection) ToggleWinner(id string) (Outcome, error) {
	a, err := c.Get(id)
	if err != nil {
		return Outcome{}, err
	}

	if a.Winner {
		a.Winner = false
		return Outcome{Animal: a, Accepted: true}, nil
	}

	winners := c.Winners()
	if len(winners) >= MaxWinners {
		return Outcome{
			Animal:   a,
			Conflict: &Conflict{Kind: ConflictTotal, Candidate: a, Winners: winners},
		}, nil
	}

	for _, w := range winners {
		if w.Type == a.Type {
			return Outcome{
				Animal:   a,
				Conflict: &Conflict{Kind: ConflictType, Candidate: a, Winners: []*Animal{w}},
			}, nil
		}
	}

	a.Winner = true
	return Outcome{Animal: a, Accepted: true}, nil
}

// RemoveWinner es la acción del diálogo de conflicto: quita el flag sin condiciones.
func (c *Collection) RemoveWinner(id string) (*Animal, error) {
	a, err := c.Get(id)
	if err != nil {
		return nil, err
	}
	a.Winner = false
	return a, nil
}
