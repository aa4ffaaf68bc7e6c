package period

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Wednesday, fixed reference point for every case.
var at = time.Date(2022, time.November, 9, 15, 30, 0, 0, time.UTC)

func endOfDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

func Test_OnResolveToday_ShouldCoverTheWholeDay(t *testing.T) {
	p, err := Resolve(Today, at)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.November, 9, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, endOfDay(2022, time.November, 9), p.End)
}

func Test_OnResolveWeek_ShouldStartOnMonday(t *testing.T) {
	p, err := Resolve(Week, at)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.November, 7, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, endOfDay(2022, time.November, 13), p.End)
}

func Test_OnResolveMonth_ShouldCoverTheCalendarMonth(t *testing.T) {
	p, err := Resolve(Month, at)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.November, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, endOfDay(2022, time.November, 30), p.End)
}

func Test_OnResolveUnknownToken_ShouldFail(t *testing.T) {
	_, err := Resolve("year", at)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func Test_OnResolve_ShouldKeepEndAfterStart(t *testing.T) {
	for _, token := range Tokens() {
		p, err := Resolve(token, at)
		assert.NoError(t, err)
		assert.False(t, p.End.Before(p.Start))
	}
}
