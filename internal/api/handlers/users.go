package handlers

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/exercise-tracker/internal/api/httpx"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.Fields(w, r)
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}
	u, err := h.Users.Create(body["username"])
	if err != nil {
		httpx.Fail(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "user created", "id", u.ID, "username", u.Username)
	httpx.WriteJSON(w, http.StatusOK, u)
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.Users.List())
}
