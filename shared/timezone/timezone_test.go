package timezone_test

import (
	"testing"
	"time"

	"vietravel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.Equal(t, timezone.GetLocation(), appTime.Location())
	assert.True(t, appTime.Equal(utcTime))
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2026-12-24")
	assert.NoError(t, err)
	assert.Equal(t, "2026-12-24", timezone.Format(parsed, "2006-01-02"))

	_, err = timezone.Parse("2006-01-02", "24/12/2026")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := timezone.GetLocation()
	moment := time.Date(2026, 5, 17, 15, 42, 11, 99, loc)

	start := timezone.StartOfDay(moment)

	assert.Equal(t, time.Date(2026, 5, 17, 0, 0, 0, 0, loc), start)
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.False(t, today.After(timezone.Now()))
}
