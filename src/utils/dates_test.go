package utils_test

import (
	"testing"
	"time"

	"networth/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatShortDate(t *testing.T) {
	date := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/07/26", utils.FormatShortDate(date))
}

func TestParseShortDate(t *testing.T) {
	parsed, err := utils.ParseShortDate("03/07/26")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 7, parsed.Day())

	_, err = utils.ParseShortDate("2026-03-07")
	assert.Error(t, err)
}
