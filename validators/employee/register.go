package employeeValidator

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
	"fincore/utils"
)

// RegisterRequest carries the raw registration form fields.
type RegisterRequest struct {
	EmployeeID      string `json:"employeeId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address"`
	ContactNumber   string `json:"contactNumber"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"empDob"`
	Aadhaar         string `json:"emp_aadhaar"`
	PAN             string `json:"emp_pan"`
	Role            string `json:"emp_role"`
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// isValidPassword checks the registration password policy: 8 to 30
// characters drawn from letters, digits and @$!%*?&, with at least one
// lowercase, one uppercase, one digit and one special character.
func isValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 30 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// CheckRegister runs every registration rule and returns a map of per-field
// errors. All rules are checked; every failing field contributes an error.
// Trimmed values are written back so the controller persists normalized
// fields.
func CheckRegister(reqData *RegisterRequest, now time.Time) map[string]string {
	errors := make(map[string]string)

	reqData.FirstName = strings.TrimSpace(reqData.FirstName)
	reqData.LastName = strings.TrimSpace(reqData.LastName)
	reqData.Email = strings.TrimSpace(reqData.Email)
	reqData.Address = strings.TrimSpace(reqData.Address)
	reqData.ContactNumber = strings.TrimSpace(reqData.ContactNumber)
	reqData.Aadhaar = strings.TrimSpace(reqData.Aadhaar)
	reqData.PAN = strings.TrimSpace(reqData.PAN)

	// Validate Name
	if reqData.FirstName == "" || len(reqData.FirstName) > 50 {
		errors["firstName"] = "First name is required (max 50 characters)"
	}
	if reqData.LastName == "" || len(reqData.LastName) > 50 {
		errors["lastName"] = "Last name is required (max 50 characters)"
	}

	// Validate Email
	if reqData.Email == "" || !emailRegex.MatchString(reqData.Email) {
		errors["email"] = "Please enter a valid email address (e.g., name@example.com)"
	}

	// Validate Password
	if !isValidPassword(reqData.Password) {
		errors["password"] = "Password must be 8-30 chars with uppercase, lowercase, number & special char (@$!%*?&)"
	}
	if reqData.Password != reqData.ConfirmPassword {
		errors["confirmPassword"] = "Passwords do not match"
	}

	// Validate Address
	if reqData.Address == "" || len(reqData.Address) > 100 {
		errors["address"] = "Address is required (max 100 characters)"
	}

	// Validate Contact Number
	if !phoneRegex.MatchString(reqData.ContactNumber) {
		errors["contactNumber"] = "Contact number must be exactly 10 digits"
	}

	// Validate Gender
	if strings.TrimSpace(reqData.Gender) == "" {
		errors["emp_gender"] = "Please select a gender"
	}

	// Validate Date of Birth. Later checks overwrite earlier messages for
	// the same field; the last failing check wins.
	dob, err := time.Parse("2006-01-02", reqData.DateOfBirth)
	if reqData.DateOfBirth == "" || err != nil {
		errors["emp_dob"] = "Date of birth is required and age must be at least 18 years"
	} else {
		age := utils.CalculateAge(dob, now)
		if age < 18 {
			errors["emp_dob"] = "Date of birth is required and age must be at least 18 years"
		}
		if age < 0 {
			errors["emp_dob"] = "Wow !! who invented time travel ? Future date not allowed"
		}
		if age > 100 {
			errors["emp_dob"] = "Too old to work here ! Age must be less than 100 years"
		}
	}

	return errors
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := CheckRegister(reqData, time.Now())

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated employee to the next middleware
		c.Locals("validatedEmployee", reqData)
		return c.Next()
	}
}
