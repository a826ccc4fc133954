package services

import (
	"github.com/baharkarakas/exercise-tracker/internal/metrics"
	"github.com/baharkarakas/exercise-tracker/internal/models"
	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Create(username string) (models.User, error) {
	u, err := s.r.Create(username)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("create_user").Inc()
		return models.User{}, err
	}
	metrics.UsersCreated.Inc()
	return u, nil
}

func (s *UserService) List() []models.User { return s.r.List() }
