package router

import (
	"net/http"

	_ "animalbase/docs"
	"animalbase/internal/domain/animals"
	"animalbase/internal/middleware"
	"animalbase/internal/platform/logger"
	"animalbase/internal/web"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Service ya cargado (o en estado de error si la carga falló).
	Service *animals.Service

	Logger logger.Logger // puede ser nil
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	svc := opts.Service
	if svc == nil {
		// sin fuente: el servicio queda en estado de error y la página lo muestra
		svc = animals.NewService(nil, log)
	}

	// UI HTML + API JSON sobre el mismo estado
	web.RegisterRoutes(r, svc, log)
	animals.RegisterRoutes(r, svc)

	return r
}
