package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/apperr"
)

// InternalErrorMsg is the only thing a caller learns about an unexpected failure.
const InternalErrorMsg = "Something went wrong!"

type APIError struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Error: msg})
}

// Fail reports err to the client. Validation and not-found errors are normal
// answers and go out with 200; anything else is logged and hidden behind a 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.Expected(err) {
		slog.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "reason", err.Error())
		WriteError(w, http.StatusOK, err.Error())
		return
	}
	slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	WriteError(w, http.StatusInternalServerError, InternalErrorMsg)
}
