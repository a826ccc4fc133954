package repository

import "github.com/baharkarakas/exercise-tracker/internal/models"

type Users interface {
	Create(username string) (models.User, error)
	GetByID(id string) (models.User, error)
	List() []models.User
}

type Exercises interface {
	Create(userID, description string, duration int, date models.Date) models.Exercise
	ListByUser(userID string) []models.Exercise
}
