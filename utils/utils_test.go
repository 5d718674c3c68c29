package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEmployeeIDIsSevenDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9][0-9]{6}$`)
	for i := 0; i < 50; i++ {
		id := GenerateEmployeeID()
		assert.Regexp(t, pattern, id)
	}
}

func TestCalculateAgeDayBeforeBirthday(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 23, CalculateAge(dob, now))
}

func TestCalculateAgeOnBirthday(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 24, CalculateAge(dob, now))
}

func TestCalculateAgeFutureDateIsNegative(t *testing.T) {
	dob := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Less(t, CalculateAge(dob, now), 0)
}

func TestCalculateAgeEarlierMonth(t *testing.T) {
	dob := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 33, CalculateAge(dob, now))
}
