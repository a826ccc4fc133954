package services

import (
	"time"

	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type ExerciseService struct {
	users     repo.Users
	exercises repo.Exercises
	now       func() time.Time
}

func NewExerciseService(u repo.Users, e repo.Exercises) *ExerciseService {
	return &ExerciseService{users: u, exercises: e, now: time.Now}
}

// WithClock replaces the source of "today" for exercises logged without a date.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

// ----------------- ADD -----------------

// Add logs an exercise for userID. The user is resolved before any field is
// looked at, so an unknown user wins over bad input.
func (s *ExerciseService) Add(userID string, raw validate.RawExercise) (models.ExerciseResult, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("add_exercise").Inc()
		return models.ExerciseResult{}, err
	}
	in, err := validate.Exercise(raw, models.DateOf(s.now()))
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("add_exercise").Inc()
		return models.ExerciseResult{}, err
	}

	e := s.exercises.Create(u.ID, in.Description(), in.Duration(), in.Date())
	metrics.ExercisesLogged.Inc()
	return models.ExerciseResult{
		ID:          u.ID,
		Username:    u.Username,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}, nil
}

// ----------------- LOG -----------------

// Log returns the user's exercises in insertion order, filtered to the
// inclusive [From, To] range and then cut to the first Limit entries.
func (s *ExerciseService) Log(userID string, q validate.LogQuery) (models.LogResult, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return models.LogResult{}, err
	}
	metrics.LogQueries.Inc()

	all := s.exercises.ListByUser(u.ID)
	kept := all[:0]
	for _, e := range all {
		if q.From != nil && e.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && e.Date.After(*q.To) {
			continue
		}
		kept = append(kept, e)
	}
	if q.Limit != nil {
		kept = kept[:headLen(len(kept), *q.Limit)]
	}

	log := make([]models.LogEntry, 0, len(kept))
	for _, e := range kept {
		log = append(log, e.Entry())
	}
	return models.LogResult{ID: u.ID, Username: u.Username, Count: len(log), Log: log}, nil
}

// headLen is the end index of slice(0, limit) over n items: a negative limit
// counts back from the end.
func headLen(n, limit int) int {
	if limit < 0 {
		limit += n
	}
	return max(0, min(limit, n))
}
