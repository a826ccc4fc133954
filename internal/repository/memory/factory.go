package memory

import (
	"github.com/baharkarakas/exercise-tracker/internal/idgen"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Exercises repo.Exercises
}

// NewRepositories returns empty stores sharing one id generator.
func NewRepositories() Repositories {
	ids := idgen.New()
	return Repositories{
		Users:     NewUsers(ids),
		Exercises: NewExercises(ids),
	}
}
