package employeeValidator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var checkNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		EmployeeID:      "4821937",
		FirstName:       "Vijay",
		LastName:        "Mallya",
		Email:           "vijay.mallya@fincorebms.com",
		Password:        "vijay@ABC1234",
		ConfirmPassword: "vijay@ABC1234",
		Address:         "123 MG Road, Bangalore",
		ContactNumber:   "9876543210",
		Gender:          "Male",
		DateOfBirth:     "1999-06-15",
		Aadhaar:         "123456789012",
		PAN:             "ABCDE1234F",
		Role:            "Teller",
	}
}

func TestCheckRegisterAcceptsValidRequest(t *testing.T) {
	errors := CheckRegister(validRegisterRequest(), checkNow)
	assert.Empty(t, errors)
}

func TestCheckRegisterCollectsAllErrors(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.FirstName = ""
	reqData.Email = "bad"

	errors := CheckRegister(reqData, checkNow)

	assert.Len(t, errors, 2)
	assert.Equal(t, "First name is required (max 50 characters)", errors["firstName"])
	assert.Equal(t, "Please enter a valid email address (e.g., name@example.com)", errors["email"])
}

func TestCheckRegisterTrimsFields(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.FirstName = "  Vijay  "
	reqData.Email = " vijay.mallya@fincorebms.com "

	errors := CheckRegister(reqData, checkNow)

	assert.Empty(t, errors)
	assert.Equal(t, "Vijay", reqData.FirstName)
	assert.Equal(t, "vijay.mallya@fincorebms.com", reqData.Email)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"vijay@ABC1234", true},
		{"Abcdef1!", false}, // ! is not in the allowed special set
		{"Abcdef1@", true},
		{"Abcdefg@", false},  // no digit
		{"abcdef1@", false},  // no uppercase
		{"ABCDEF1@", false},  // no lowercase
		{"Abcdefg1", false},  // no special char
		{"Ab1@xyz", false},   // 7 chars, too short
		{"Aa1@" + "aaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 31 chars
		{"Aa1@aaaa", true},
		{"Aa1@aaa a", false}, // space outside allowed charset
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, isValidPassword(tc.password), "password %q", tc.password)
	}
}

func TestCheckRegisterPasswordMismatch(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.ConfirmPassword = "vijay@ABC9999"

	errors := CheckRegister(reqData, checkNow)
	assert.Equal(t, "Passwords do not match", errors["confirmPassword"])
}

func TestCheckRegisterContactNumber(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.ContactNumber = "12345"

	errors := CheckRegister(reqData, checkNow)
	assert.Equal(t, "Contact number must be exactly 10 digits", errors["contactNumber"])
}

func TestCheckRegisterDateOfBirth(t *testing.T) {
	cases := []struct {
		name    string
		dob     string
		message string
	}{
		{"empty", "", "Date of birth is required and age must be at least 18 years"},
		{"under 18", "2010-01-01", "Date of birth is required and age must be at least 18 years"},
		{"day before 18th birthday", "2006-06-16", "Date of birth is required and age must be at least 18 years"},
		{"future date", "2030-01-01", "Wow !! who invented time travel ? Future date not allowed"},
		{"over 100", "1920-01-01", "Too old to work here ! Age must be less than 100 years"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reqData := validRegisterRequest()
			reqData.DateOfBirth = tc.dob

			errors := CheckRegister(reqData, checkNow)
			assert.Equal(t, tc.message, errors["emp_dob"])
		})
	}
}

func TestCheckRegisterAcceptsEighteenthBirthday(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.DateOfBirth = "2006-06-15"

	errors := CheckRegister(reqData, checkNow)
	assert.Empty(t, errors)
}

func TestCheckRegisterAcceptsAgeExactlyOneHundred(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.DateOfBirth = "1924-06-15"

	errors := CheckRegister(reqData, checkNow)
	assert.Empty(t, errors)
}

func TestCheckRegisterGenderRequired(t *testing.T) {
	reqData := validRegisterRequest()
	reqData.Gender = "  "

	errors := CheckRegister(reqData, checkNow)
	assert.Equal(t, "Please select a gender", errors["emp_gender"])
}
