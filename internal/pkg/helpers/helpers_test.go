package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-10-01 ")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), *d)
	assert.Equal(t, "2024-10-01", FormatDate(d))

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Equal(t, "", FormatDate(nil))

	_, err = ParseDate("01.10.2024")
	assert.Error(t, err)
}

func TestDateRangeValid(t *testing.T) {
	start := MustDate(2024, time.October, 1)
	end := MustDate(2025, time.March, 31)

	assert.True(t, DateRangeValid(start, end))
	assert.True(t, DateRangeValid(start, start))
	assert.False(t, DateRangeValid(end, start))
	assert.True(t, DateRangeValid(nil, end))
	assert.True(t, DateRangeValid(start, nil))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestInt64Ptr(t *testing.T) {
	assert.Nil(t, Int64Ptr(0))
	assert.Equal(t, int64(7), *Int64Ptr(7))
}
