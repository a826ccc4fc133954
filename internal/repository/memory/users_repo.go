package memory

import (
	"sync"

	"github.com/baharkarakas/exercise-tracker/internal/apperr"
	"github.com/baharkarakas/exercise-tracker/internal/idgen"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

type usersRepo struct {
	mu    sync.RWMutex
	ids   *idgen.Generator
	users []models.User
	byID  map[string]int
}

func NewUsers(ids *idgen.Generator) repository.Users {
	return &usersRepo{ids: ids, byID: map[string]int{}}
}

func (r *usersRepo) Create(username string) (models.User, error) {
	if username == "" {
		return models.User{}, apperr.ErrUsernameRequired
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u := models.User{ID: r.ids.Next(idgen.Users), Username: username}
	r.byID[u.ID] = len(r.users)
	r.users = append(r.users, u)
	return u, nil
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return models.User{}, apperr.UserNotFound(id)
	}
	return r.users[i], nil
}

func (r *usersRepo) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out
}
