package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jaiganesh5555/arcade/internal/middleware"
	"github.com/jaiganesh5555/arcade/internal/model"
	"github.com/jaiganesh5555/arcade/internal/service"
)

// DemoHandler handles HTTP requests for demo CRUD operations.
type DemoHandler struct {
	service *service.DemoService
}

// NewDemoHandler creates a new DemoHandler.
func NewDemoHandler(svc *service.DemoService) *DemoHandler {
	return &DemoHandler{service: svc}
}

// isDemoValidationError reports whether err is a demo payload violation.
func isDemoValidationError(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrDescriptionRequired) ||
		errors.Is(err, service.ErrTypeRequired) ||
		errors.Is(err, service.ErrContentRequired)
}

func demoIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// HandleCreate handles POST /api/demos requests.
func (h *DemoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isDemoValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/demos requests.
func (h *DemoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	demos, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, demos)
}

// HandleGet handles GET /api/demos/{id} requests. Each read increments the
// view counter; the response carries the pre-increment count.
func (h *DemoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	demoID, err := demoIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid demo id"))
		return
	}

	resp, err := h.service.Get(r.Context(), userID, demoID)
	if err != nil {
		if errors.Is(err, service.ErrDemoNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/demos/{id} requests.
func (h *DemoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	demoID, err := demoIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid demo id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.DemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Update(r.Context(), userID, demoID, req)
	if err != nil {
		switch {
		case isDemoValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrDemoNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/demos/{id} requests.
func (h *DemoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	demoID, err := demoIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid demo id"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, demoID); err != nil {
		if errors.Is(err, service.ErrDemoNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "demo deleted successfully"})
}
