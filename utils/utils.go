package utils

import (
	"math/rand"
	"strconv"
	"time"
)

// GenerateEmployeeID generates a random 7-digit employee id. It is minted
// when the registration form loads, not at submit time, and is never checked
// against ids already in the store.
func GenerateEmployeeID() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return strconv.Itoa(rng.Intn(9000000) + 1000000)
}

// CalculateAge returns the calendar-exact age at now: the year difference,
// minus one when the birthday has not yet come around this year. A future
// date of birth yields a negative age.
func CalculateAge(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
