package web

import (
	"bytes"
	"errors"
	"net/http"

	"animalbase/internal/domain/animals"
	"animalbase/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la UI HTML. Cada acción es un POST que muta el estado
// y redirige a "/" (post/redirect/get), salvo el ganador rechazado que pinta el diálogo.
func RegisterRoutes(r chi.Router, svc *animals.Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/", indexHandler(svc, log))

	r.Route("/ui", func(ur chi.Router) {
		ur.Post("/filter", filterHandler(svc, log))
		ur.Post("/sort", sortHandler(svc, log))
		ur.Post("/reload", reloadHandler(svc, log))

		ur.Post("/animals/{animalID}/star", starHandler(svc, log))
		ur.Post("/animals/{animalID}/winner", winnerHandler(svc, log))
		ur.Post("/winners/{animalID}/remove", removeWinnerHandler(svc, log))
	})
}

func indexHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, log, svc.Snapshot(), nil)
	}
}

func filterHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if _, err := svc.Filter(r.PostForm.Get("filter")); err != nil {
			handleError(w, r, svc, log, err)
			return
		}
		backToIndex(w, r)
	}
}

func sortHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		if _, _, err := svc.Sort(r.PostForm.Get("sort")); err != nil {
			handleError(w, r, svc, log, err)
			return
		}
		backToIndex(w, r)
	}
}

func reloadHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// El error queda en el snapshot; la página lo muestra.
		_ = svc.Reload(r.Context())
		backToIndex(w, r)
	}
}

func starHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.ToggleStar(chi.URLParam(r, "animalID")); err != nil {
			handleError(w, r, svc, log, err)
			return
		}
		backToIndex(w, r)
	}
}

func winnerHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ToggleWinner(chi.URLParam(r, "animalID"))
		if err != nil {
			handleError(w, r, svc, log, err)
			return
		}
		if res.Conflict != nil {
			// Rechazo: nunca silencioso, se pinta la vista con el diálogo encima.
			renderPage(w, log, svc.Snapshot(), res.Conflict)
			return
		}
		backToIndex(w, r)
	}
}

func removeWinnerHandler(svc *animals.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.RemoveWinner(chi.URLParam(r, "animalID")); err != nil {
			handleError(w, r, svc, log, err)
			return
		}
		backToIndex(w, r)
	}
}

func handleError(w http.ResponseWriter, r *http.Request, svc *animals.Service, log logger.Logger, err error) {
	if errors.Is(err, animals.ErrNotLoaded) {
		renderPage(w, log, svc.Snapshot(), nil)
		return
	}

	status := animals.StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("ui action failed", map[string]any{"path": r.URL.Path, "err": err})
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func renderPage(w http.ResponseWriter, log logger.Logger, snap animals.Snapshot, conflict *animals.ConflictView) {
	// Render a buffer para no mandar una página a medias si el template falla.
	var buf bytes.Buffer
	if err := Render(&buf, newPageData(snap, conflict)); err != nil {
		log.Error("render page failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !snap.Loaded {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func backToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
