package memory

import (
	"sync"

	"github.com/baharkarakas/exercise-tracker/internal/idgen"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

type exercisesRepo struct {
	mu        sync.RWMutex
	ids       *idgen.Generator
	exercises []models.Exercise
	// positions into exercises, per user, in insertion order
	byUser map[string][]int
}

func NewExercises(ids *idgen.Generator) repository.Exercises {
	return &exercisesRepo{ids: ids, byUser: map[string][]int{}}
}

func (r *exercisesRepo) Create(userID, description string, duration int, date models.Date) models.Exercise {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := models.Exercise{
		ID:          r.ids.Next(idgen.Exercises),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	r.byUser[userID] = append(r.byUser[userID], len(r.exercises))
	r.exercises = append(r.exercises, e)
	return e
}

func (r *exercisesRepo) ListByUser(userID string) []models.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.byUser[userID]
	out := make([]models.Exercise, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.exercises[i])
	}
	return out
}
