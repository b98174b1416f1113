package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventify/eventify-go/internal/model"
	"github.com/eventify/eventify-go/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleFindByID handles GET /user/{id} requests. The read is PIN-gated.
func (h *UserHandler) HandleFindByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pin := r.URL.Query().Get("pin")

	user, err := h.service.Validate(r.Context(), id, pin)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToUserResponse(user))
}

// HandleCreate handles POST /user requests.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/user/"+user.ID)
	writeJSON(w, http.StatusCreated, model.ToUserResponse(user))
}

// HandleUpdate handles PUT /user/{id} requests.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pin := r.URL.Query().Get("pin")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Update(r.Context(), id, pin, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToUserResponse(user))
}

// HandleDelete handles DELETE /user/{id} requests.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pin := r.URL.Query().Get("pin")

	if err := h.service.Delete(r.Context(), id, pin); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleEvents handles GET /user/{id}/events requests: the events the user
// is participating in.
func (h *UserHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pin := r.URL.Query().Get("pin")

	events, err := h.service.EventsByUser(r.Context(), id, pin)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ToEventResponseList(events))
}
