package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2/1/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", got)

	got, err = ParseDate(" 12 / 25 / 2026 ")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-25", got)

	got, err = ParseDate("02/01/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", got)
}

func TestParseDate_NoCalendarCheck(t *testing.T) {
	got, err := ParseDate("13/40/2026")
	require.NoError(t, err)
	assert.Equal(t, "2026-13-40", got)
}

func TestParseDate_Failures(t *testing.T) {
	tests := []struct {
		token  string
		reason Reason
	}{
		{"13/5", ReasonArity},
		{"1/2/3/4", ReasonArity},
		{"", ReasonArity},
		{"1//2026", ReasonEmptyPart},
		{"a/1/2026", ReasonNotNumeric},
		{"1/2x/2026", ReasonNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseDate(tt.token)
			assert.Empty(t, got)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.reason, pe.Reason)
			assert.Equal(t, tt.token, pe.Token)
		})
	}
}

func TestNormalizeDateRange(t *testing.T) {
	assert.Equal(t, "2026-02-01 to 2026-03-04", NormalizeDateRange("2/1/2026 - 3/4/2026"))
	assert.Equal(t, "2026-02-01 to 2026-03-04", NormalizeDateRange("2026-02-01 to 2026-03-04"))
	assert.Equal(t, "not a date", NormalizeDateRange("not a date"))
	assert.Equal(t, "", NormalizeDateRange(""))

	// Start picked, end still pending.
	assert.Equal(t, "2/1/2026", NormalizeDateRange("2/1/2026"))

	// Backend-originated strings are left alone wherever the ISO date sits.
	assert.Equal(t, "leave on 2026-02-01", NormalizeDateRange("leave on 2026-02-01"))
}

func TestNormalizeDateRange_Idempotent(t *testing.T) {
	once := NormalizeDateRange("7/4/2026 - 7/18/2026")
	assert.Equal(t, once, NormalizeDateRange(once))
}

func TestParseDateRange_ExtraHyphens(t *testing.T) {
	// Only the first two segments are considered.
	r, err := ParseDateRange("2/1/2026 - 3/4/2026 - 5/6/2026")
	require.NoError(t, err)
	assert.Equal(t, DateRange{Start: "2026-02-01", End: "2026-03-04"}, r)

	_, err = ParseDateRange("2/1/2026 - soon")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ReasonArity, pe.Reason)
}

func TestExtractISODates(t *testing.T) {
	dep, ret, ok := ExtractISODates("2026-02-01 to 2026-03-04")
	assert.True(t, ok)
	assert.Equal(t, "2026-02-01", dep)
	assert.Equal(t, "2026-03-04", ret)

	dep, ret, ok = ExtractISODates("2026-02-01")
	assert.True(t, ok)
	assert.Equal(t, "2026-02-01", dep)
	assert.Empty(t, ret)

	_, _, ok = ExtractISODates("2/1/2026 - 3/4/2026")
	assert.False(t, ok)
}

func TestNormalizeBudget(t *testing.T) {
	assert.Equal(t, "4000", NormalizeBudget("2000-4000"))
	assert.Equal(t, "", NormalizeBudget("5000+"))
	assert.Equal(t, "", NormalizeBudget(""))
	assert.Equal(t, "", NormalizeBudget("3000"))
	assert.Equal(t, "", NormalizeBudget("1000-"))
	assert.Equal(t, "1000", NormalizeBudget(" 500 - 1000 "))
}

func TestBrackets(t *testing.T) {
	require.NotEmpty(t, Brackets)
	for _, b := range Brackets[:len(Brackets)-1] {
		assert.NotEmpty(t, NormalizeBudget(b.Value), b.Value)
	}
	assert.Empty(t, NormalizeBudget(Brackets[len(Brackets)-1].Value))
}
