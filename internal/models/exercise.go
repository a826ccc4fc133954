package models

type Exercise struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        Date   `json:"date"`
}

// ExerciseResult is the user merged with a freshly logged exercise.
type ExerciseResult struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        Date   `json:"date"`
}

// LogEntry is an exercise without its ids.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        Date   `json:"date"`
}

type LogResult struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

func (e Exercise) Entry() LogEntry {
	return LogEntry{Description: e.Description, Duration: e.Duration, Date: e.Date}
}
