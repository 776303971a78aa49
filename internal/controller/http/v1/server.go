package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/device_warehouse/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

// NewRouter mounts the warehouse API under /api/v1.
func NewRouter(log *slog.Logger, store Store, planner AutoFiller, renderer ShelfMapRenderer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	shelves := NewShelvesHandler(log, store, store, renderer)
	devices := NewDevicesHandler(log, store, store, store)
	autofill := NewAutofillHandler(log, planner)
	drags := NewDragHandler(log, store, store)
	events := NewEventsHandler(log, store)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/shelves", func(r chi.Router) {
			r.Get("/", shelves.ListShelves)
			r.Post("/", shelves.CreateShelf)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", shelves.GetShelf)
				r.Patch("/", shelves.UpdateShelf)
				r.Delete("/", shelves.DeleteShelf)
				r.Get("/slots", shelves.ListSlots)
				r.Get("/sections", shelves.ListSections)
				r.Get("/report.pdf", shelves.ShelfMap)
			})
		})

		r.Route("/devices", func(r chi.Router) {
			r.Get("/", devices.ListDevices)
			r.Get("/unassigned", devices.ListUnassigned)
			r.Post("/swap", devices.SwapDevices)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", devices.GetDevice)
				r.Put("/placement", devices.PlaceDevice)
				r.Delete("/placement", devices.UnplaceDevice)
			})
		})

		r.Post("/autofill", autofill.Run)

		r.Route("/drag/{session}", func(r chi.Router) {
			r.Post("/begin", drags.Begin)
			r.Post("/hover", drags.Hover)
			r.Post("/drop", drags.Drop)
			r.Post("/cancel", drags.Cancel)
		})

		r.Get("/placements.csv", devices.ExportPlacements)
		r.Get("/events", events.Stream)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
