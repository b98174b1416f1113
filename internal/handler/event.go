package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/service"
)

// EventHandler handles HTTP requests for event and participation
// operations.
type EventHandler struct {
	events        *service.EventService
	participation *service.ParticipationService
	forecast      *service.ForecastService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events *service.EventService, participation *service.ParticipationService, forecast *service.ForecastService) *EventHandler {
	return &EventHandler{
		events:        events,
		participation: participation,
		forecast:      forecast,
	}
}

// HandleFindAll handles GET /event/all requests.
func (h *EventHandler) HandleFindAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.FindAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToEventResponseList(events))
}

// HandleFindByID handles GET /event/{id} requests. The response includes
// the weather forecast for the event's location.
func (h *EventHandler) HandleFindByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	event, err := h.events.FindByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	h.respondWithForecast(w, r, http.StatusOK, event)
}

// HandleCreate handles POST /event requests.
func (h *EventHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerPin := r.URL.Query().Get("ownerPin")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.events.Create(r.Context(), ownerPin, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/event/"+event.ID)
	h.respondWithForecast(w, r, http.StatusCreated, event)
}

// HandleUpdate handles PUT /event/{id} requests.
func (h *EventHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ownerID := r.URL.Query().Get("ownerId")
	ownerPin := r.URL.Query().Get("ownerPin")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.events.Update(r.Context(), id, ownerID, ownerPin, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	h.respondWithForecast(w, r, http.StatusOK, event)
}

// HandleDelete handles DELETE /event/{id} requests.
func (h *EventHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ownerID := r.URL.Query().Get("ownerId")
	ownerPin := r.URL.Query().Get("ownerPin")

	if err := h.events.Delete(r.Context(), id, ownerID, ownerPin); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRegister handles PUT /event/{id}/participant/{userId} requests.
func (h *EventHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")
	userPin := r.URL.Query().Get("userPin")

	if err := h.participation.Register(r.Context(), id, userID, userPin); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnregister handles DELETE /event/{id}/participant/{userId} requests.
func (h *EventHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")
	userPin := r.URL.Query().Get("userPin")

	if err := h.participation.Unregister(r.Context(), id, userID, userPin); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleParticipants handles GET /event/{id}/participants requests.
func (h *EventHandler) HandleParticipants(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	participants, err := h.participation.ListParticipants(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToUserResponseList(participants))
}

func (h *EventHandler) respondWithForecast(w http.ResponseWriter, r *http.Request, status int, event *model.Event) {
	forecast, err := h.forecast.EventForecast(r.Context(), event)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, status, model.EventWithForecastResponse{
		Event:    model.ToEventResponse(event),
		Forecast: forecast,
	})
}
