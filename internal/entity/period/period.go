package period

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

// Weeks start on Monday; months follow the calendar. Both endpoints
// of a resolved range are inclusive.

const (
	Today = "today"
	Week  = "week"
	Month = "month"
)

var ErrInvalidPeriod = errors.New("unsupported period")

var tokens = []string{Today, Week, Month}

type Period struct {
	Kind  string
	Start time.Time
	End   time.Time
}

// Resolve maps a period token onto a concrete inclusive time range
// around the reference instant. The range is computed in the location
// carried by at.
func Resolve(token string, at time.Time) (Period, error) {
	conf := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: at.Location(),
	}
	n := conf.With(at)

	switch token {
	case Today:
		return Period{Kind: token, Start: n.BeginningOfDay(), End: n.EndOfDay()}, nil
	case Week:
		return Period{Kind: token, Start: n.BeginningOfWeek(), End: n.EndOfWeek()}, nil
	case Month:
		return Period{Kind: token, Start: n.BeginningOfMonth(), End: n.EndOfMonth()}, nil
	}
	return Period{}, errors.Wrap(ErrInvalidPeriod, token)
}

func Tokens() []string {
	res := make([]string, len(tokens))
	copy(res, tokens)
	return res
}

func IsToken(s string) bool {
	for _, t := range tokens {
		if t == s {
			return true
		}
	}
	return false
}
