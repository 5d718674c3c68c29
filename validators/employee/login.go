package employeeValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
)

// LoginRequest carries the raw employee login form fields.
type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

var (
	specialCharPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	numberPattern      = regexp.MustCompile(`[0-9]`)
	upperCasePattern   = regexp.MustCompile(`[A-Z]`)
	lowerCasePattern   = regexp.MustCompile(`[a-z]`)
)

// CheckLogin mirrors the customer login rules for the employee form: rules
// run in source order, the first failure wins, and the password is never
// compared to any stored record.
func CheckLogin(reqData *LoginRequest) (string, string, bool) {
	reqData.EmployeeID = strings.TrimSpace(reqData.EmployeeID)

	// Validate Employee ID
	if len(reqData.EmployeeID) < 7 {
		return "employeeId", "Employee ID must be 7 digits", false
	}
	// The id must parse as a number. ParseFloat admits decimal forms only;
	// exotic encodings such as hex strings are rejected.
	if _, err := strconv.ParseFloat(reqData.EmployeeID, 64); err != nil {
		return "employeeId", "Employee ID must be 7 digits", false
	}

	// Validate Password
	if len(reqData.Password) < 8 || len(reqData.Password) > 30 {
		return "password", "Password length 8 to 30 characters are required", false
	}

	// Password complexity validation
	if !specialCharPattern.MatchString(reqData.Password) ||
		!numberPattern.MatchString(reqData.Password) ||
		!upperCasePattern.MatchString(reqData.Password) ||
		!lowerCasePattern.MatchString(reqData.Password) {
		return "password", "Password must contain at least one special character, one number, one uppercase and one lowercase letter", false
	}

	return "", "", true
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if field, message, ok := CheckLogin(reqData); !ok {
			return middleware.ValidationErrorResponse(c, map[string]string{field: message})
		}

		// Pass validated login request to the next middleware
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
