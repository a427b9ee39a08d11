package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func filledForm() *Form {
	f := New(clock)
	f.Destination = "Paris"
	f.Budget = "2000-4000"
	f.Transport = "Flight"
	f.Message = "Museums please"
	f.Dates.Open()
	_ = f.Dates.SelectDay(5)
	_ = f.Dates.SelectDay(20)
	return f
}

func TestToggleInterest(t *testing.T) {
	f := New(clock)

	assert.True(t, f.ToggleInterest("Food"))
	assert.True(t, f.ToggleInterest("Museums"))
	assert.True(t, f.ToggleInterest("Beaches"))
	assert.False(t, f.ToggleInterest("Museums"))

	assert.Equal(t, []string{"Food", "Beaches"}, f.Interests())
}

func TestInterestsAreCopied(t *testing.T) {
	f := New(clock)
	f.ToggleInterest("Food")

	got := f.Interests()
	got[0] = "changed"
	assert.Equal(t, []string{"Food"}, f.Interests())
}

func TestValidate(t *testing.T) {
	f := New(clock)
	assert.ErrorIs(t, f.Validate(), ErrEmptyMessage)

	f.Message = "hi"
	assert.ErrorIs(t, f.Validate(), ErrMissingFields)

	f.Destination = "Rome"
	f.Budget = "0-500"
	assert.ErrorIs(t, f.Validate(), ErrMissingFields)

	f.Dates.SetValue("2026-02-01 to 2026-02-09")
	assert.NoError(t, f.Validate())
}

func TestPayload(t *testing.T) {
	f := filledForm()
	require.NoError(t, f.Validate())

	p, warnings := f.Payload()
	assert.Empty(t, warnings)
	assert.Equal(t, "BOS", p.Origin)
	assert.Equal(t, "Paris", p.Destination)
	assert.Equal(t, "2026-10-05 to 2026-10-20", p.Dates)
	assert.Equal(t, "4000", p.Budget)
	assert.Equal(t, "Flight", p.Transport)
	assert.Equal(t, "Museums please", p.Message)
}

func TestPayload_DegradesAndWarns(t *testing.T) {
	f := filledForm()
	f.Dates.SetValue("next summer")
	f.Budget = "lots"

	p, warnings := f.Payload()
	assert.Equal(t, "next summer", p.Dates)
	assert.Equal(t, "", p.Budget)
	assert.Len(t, warnings, 2)
}

func TestPayload_OpenBracket(t *testing.T) {
	f := filledForm()
	f.Budget = "5000+"

	p, warnings := f.Payload()
	assert.Empty(t, warnings)
	assert.Equal(t, "", p.Budget)
}

func TestItinerary(t *testing.T) {
	f := filledForm()
	got := f.Itinerary()

	assert.Contains(t, got, "Great! I'm planning a trip to Paris from 10/5/2026 - 10/20/2026 with a $2000-4000 budget")
	assert.Contains(t, got, "Your interests: general sightseeing")
	assert.Contains(t, got, "Special requests: Museums please")

	f.ToggleInterest("Food")
	f.ToggleInterest("Nightlife")
	assert.Contains(t, f.Itinerary(), "Your interests: Food, Nightlife")
}
