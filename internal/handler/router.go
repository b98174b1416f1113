package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventify/eventify-go/internal/middleware"
)

// NewRouter wires all routes onto a chi router.
func NewRouter(users *UserHandler, events *EventHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/user", func(r chi.Router) {
		r.With(middleware.RateLimit(5, 10)).Post("/", users.HandleCreate)
		r.Get("/{id}", users.HandleFindByID)
		r.Put("/{id}", users.HandleUpdate)
		r.Delete("/{id}", users.HandleDelete)
		r.Get("/{id}/events", users.HandleEvents)
	})

	r.Route("/event", func(r chi.Router) {
		r.Get("/all", events.HandleFindAll)
		r.Get("/{id}", events.HandleFindByID)
		r.Post("/", events.HandleCreate)
		r.Put("/{id}", events.HandleUpdate)
		r.Delete("/{id}", events.HandleDelete)
		r.Put("/{id}/participant/{userId}", events.HandleRegister)
		r.Delete("/{id}/participant/{userId}", events.HandleUnregister)
		r.Get("/{id}/participants", events.HandleParticipants)
	})

	return r
}
