// Package seed preloads users and exercises at startup from a YAML file.
//
// Records are replayed through the services, so they get ids and validation
// exactly as if they had arrived over HTTP:
//
//	users:
//	  - username: alice
//	    exercises:
//	      - description: run
//	        duration: "30"
//	        date: "2023-01-01"
package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baharkarakas/exercise-tracker/internal/api/validate"
	"github.com/baharkarakas/exercise-tracker/internal/services"
)

type File struct {
	Users []User `yaml:"users"`
}

type User struct {
	Username  string     `yaml:"username"`
	Exercises []Exercise `yaml:"exercises"`
}

type Exercise struct {
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
	Date        string `yaml:"date"`
}

// Result counts what Apply created.
type Result struct {
	Users     int
	Exercises int
}

func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	return f, nil
}

func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()
	return Decode(fh)
}

// Apply creates every user and their exercises in file order and stops at the
// first rejected record.
func Apply(f File, us *services.UserService, es *services.ExerciseService) (Result, error) {
	var res Result
	for i, su := range f.Users {
		u, err := us.Create(su.Username)
		if err != nil {
			return res, fmt.Errorf("seed user %d: %w", i, err)
		}
		res.Users++
		for j, se := range su.Exercises {
			_, err := es.Add(u.ID, validate.RawExercise{
				Description: se.Description,
				Duration:    se.Duration,
				Date:        se.Date,
			})
			if err != nil {
				return res, fmt.Errorf("seed user %d (%s) exercise %d: %w", i, su.Username, j, err)
			}
			res.Exercises++
		}
	}
	return res, nil
}
