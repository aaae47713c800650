package animals

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listViewHandler(svc))
		ar.Get("/all", listAllHandler(svc))
		ar.Post("/filter", filterHandler(svc))
		ar.Post("/sort", sortHandler(svc))

		ar.Post("/{animalID}/star", toggleStarHandler(svc))
		ar.Post("/{animalID}/winner", toggleWinnerHandler(svc))

		// Acción del diálogo de conflicto: quitar un ganador
		ar.Delete("/{animalID}/winner", removeWinnerHandler(svc))
	})

	r.Post("/reload", reloadHandler(svc))
}

type filterRequest struct {
	Type string `json:"type" example:"cat"` // "*" = todos
}

type sortRequest struct {
	Key string `json:"key" enums:"name,desc,type,age,star,winner"`
}

// animalResponse representa una fila de la tabla.
type animalResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Type   string `json:"type"`
	Age    int    `json:"age"`
	Star   bool   `json:"star"`
	Winner bool   `json:"winner"`
}

// viewResponse es la vista actual con su estado de filtro/orden.
type viewResponse struct {
	Filter    string               `json:"filter"`
	Sort      *sortState           `json:"sort,omitempty"`
	NextDir   map[string]Direction `json:"next_direction"`
	Total     int                  `json:"total"`
	Animals   []animalResponse     `json:"animals"`
	Warnings  []string             `json:"warnings,omitempty"`
	WinnerIDs []string             `json:"winner_ids"`
}

type sortState struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// conflictResponse es el cuerpo del 409 cuando se rechaza un ganador.
type conflictResponse struct {
	Kind      ConflictKind     `json:"kind" enums:"type,total"`
	Message   string           `json:"message"`
	Candidate animalResponse   `json:"candidate"`
	Winners   []animalResponse `json:"winners"`
}

// listViewHandler godoc
// @Summary Vista actual
// @Description Devuelve la vista actual (filtrada/ordenada) de animales.
// @Tags animals
// @Produce json
// @Success 200 {object} viewResponse
// @Failure 503 {string} string "animals not loaded"
// @Router /animals [get]
func listViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		if !snap.Loaded {
			http.Error(w, snap.LoadErr.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(snap, nil))
	}
}

// listAllHandler godoc
// @Summary Lista completa
// @Description Devuelve todos los animales en el orden de carga, sin filtro ni orden.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/all [get]
func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.All()
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// filterHandler godoc
// @Summary Filtrar por tipo
// @Description Reemplaza la vista por los animales del tipo indicado, en orden de carga. `*` devuelve todos.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body filterRequest true "Tipo a filtrar"
// @Success 200 {object} viewResponse
// @Failure 400 {string} string "invalid json"
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/filter [post]
func filterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req filterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, err := svc.Filter(req.Type)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(snap, nil))
	}
}

// sortHandler godoc
// @Summary Ordenar la vista
// @Description Ordena la vista actual por la columna indicada. Cada columna empieza descendente y alterna en cada llamada.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body sortRequest true "Columna"
// @Success 200 {object} viewResponse
// @Failure 400 {string} string "invalid json / unknown sort key"
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/sort [post]
func sortHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sortRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		snap, dir, err := svc.Sort(req.Key)
		if err != nil {
			writeError(w, err)
			return
		}
		key, _ := ParseSortKey(req.Key)
		writeJSON(w, http.StatusOK, toViewResponse(snap, &sortState{Key: key, Direction: dir}))
	}
}

// toggleStarHandler godoc
// @Summary Alternar estrella
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de fila"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/{animalID}/star [post]
func toggleStarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.ToggleStar(chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// toggleWinnerHandler godoc
// @Summary Alternar ganador
// @Description Apagar siempre se acepta. Encender se rechaza con 409 si ya hay dos ganadores (`total`) o uno del mismo tipo (`type`); el cuerpo lista los ganadores que se pueden quitar.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de fila"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 409 {object} conflictResponse
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/{animalID}/winner [post]
func toggleWinnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ToggleWinner(chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}

		if res.Conflict != nil {
			out := conflictResponse{
				Kind:      res.Conflict.Kind,
				Message:   res.Conflict.Message,
				Candidate: toAnimalResponse(res.Conflict.Candidate),
				Winners:   make([]animalResponse, 0, len(res.Conflict.Winners)),
			}
			for _, a := range res.Conflict.Winners {
				out.Winners = append(out.Winners, toAnimalResponse(a))
			}
			writeJSON(w, http.StatusConflict, out)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(res.Animal))
	}
}

// removeWinnerHandler godoc
// @Summary Quitar ganador
// @Description Quita el flag de ganador sin condiciones (acción del diálogo de conflicto).
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de fila"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Failure 503 {string} string "animals not loaded"
// @Router /animals/{animalID}/winner [delete]
func removeWinnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.RemoveWinner(chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// reloadHandler godoc
// @Summary Recargar la fuente
// @Description Vuelve a cargar animals.json y descarta estrellas, ganadores, filtro y orden.
// @Tags animals
// @Produce json
// @Success 200 {object} viewResponse
// @Failure 503 {string} string "load failed"
// @Router /reload [post]
func reloadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reload(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(svc.Snapshot(), nil))
	}
}

// StatusFor mapea errores del dominio a códigos HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownSortKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotLoaded), errors.Is(err, ErrLoadFailed), errors.Is(err, ErrInvalidPayload):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:     a.ID,
		Name:   a.Name,
		Desc:   a.Desc,
		Type:   a.Type,
		Age:    a.Age,
		Star:   a.Star,
		Winner: a.Winner,
	}
}

func toViewResponse(s Snapshot, applied *sortState) viewResponse {
	out := viewResponse{
		Filter:    s.Filter,
		Sort:      applied,
		NextDir:   make(map[string]Direction, len(s.NextDir)),
		Total:     s.Total,
		Animals:   make([]animalResponse, 0, len(s.View)),
		Warnings:  s.Warnings,
		WinnerIDs: make([]string, 0, len(s.Winners)),
	}
	for k, d := range s.NextDir {
		out.NextDir[string(k)] = d
	}
	for _, a := range s.View {
		out.Animals = append(out.Animals, toAnimalResponse(a))
	}
	for _, a := range s.Winners {
		out.WinnerIDs = append(out.WinnerIDs, a.ID)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
