package oadate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEpochs(t *testing.T) {
	assert.Equal(t, time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC), Mode1900.Epoch())
	assert.Equal(t, time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC), Mode1904.Epoch())
}

func TestFromTime(t *testing.T) {
	// 1900-01-01 is serial 2 against the 1899-12-30 epoch.
	assert.Equal(t, 2.0, Mode1900.FromTime(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)))
	// Noon is half a day.
	assert.Equal(t, 0.5, Mode1900.FromTime(time.Date(1899, 12, 30, 12, 0, 0, 0, time.UTC)))
	// Mode offset: the two date systems differ by 1462 days.
	d := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1462.0, Mode1900.FromTime(d)-Mode1904.FromTime(d))
}

func TestRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC),
		time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC),
		time.Date(2087, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(1899, 12, 29, 18, 0, 0, 0, time.UTC), // negative serial
	}
	for _, mode := range []Mode{Mode1900, Mode1904} {
		for _, d := range dates {
			assert.True(t, mode.ToTime(mode.FromTime(d)).Equal(d), "%s mode %d", d, mode)
		}
	}
}

func TestToTimeFraction(t *testing.T) {
	got := Mode1900.ToTime(2.75)
	assert.Equal(t, time.Date(1900, 1, 1, 18, 0, 0, 0, time.UTC), got)
}
