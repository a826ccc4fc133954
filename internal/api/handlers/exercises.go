package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

// UserIDParam is the path parameter naming the user.
const UserIDParam = "_id"

type ExerciseHandler struct {
	Exercises *services.ExerciseService
}

func NewExerciseHandler(es *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{Exercises: es}
}

// Add handles POST /api/users/{_id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.Fields(w, r)
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}
	res, err := h.Exercises.Add(chi.URLParam(r, UserIDParam), validate.RawExercise{
		Description: body["description"],
		Duration:    body["duration"],
		Date:        body["date"],
	})
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "exercise logged", "user", res.ID, "duration", res.Duration, "date", res.Date.String())
	httpx.WriteJSON(w, http.StatusOK, res)
}

// Log handles GET /api/users/{_id}/logs?from&to&limit.
func (h *ExerciseHandler) Log(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Exercises.Log(chi.URLParam(r, UserIDParam), validate.ParseLogQuery(q.Get("from"), q.Get("to"), q.Get("limit")))
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
