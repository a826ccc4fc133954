package validate

import "github.com/baharkarakas/exercise-tracker/internal/models"

// LogQuery holds the optional log filters. A nil field means "not applied";
// values that fail to parse are dropped rather than reported.
type LogQuery struct {
	From  *models.Date
	To    *models.Date
	Limit *int
}

func ParseLogQuery(from, to, limit string) LogQuery {
	var q LogQuery
	if d, ok := ParseDate(from); ok {
		q.From = &d
	}
	if d, ok := ParseDate(to); ok {
		q.To = &d
	}
	if n, ok := ParseIntPrefix(limit); ok {
		q.Limit = &n
	}
	return q
}
