package customerValidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
)

// LoginRequest carries the raw login form fields.
type LoginRequest struct {
	CustomerID string `json:"customerId"`
	Password   string `json:"password"`
}

var (
	specialCharPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	numberPattern      = regexp.MustCompile(`[0-9]`)
	upperCasePattern   = regexp.MustCompile(`[A-Z]`)
	lowerCasePattern   = regexp.MustCompile(`[a-z]`)
)

// CheckLogin applies the login rules in source order and stops at the first
// failure, returning the failing field and its message. Only one error is
// ever surfaced per attempt; this differs from registration on purpose.
// The password is checked for shape only, never against a stored credential.
func CheckLogin(reqData *LoginRequest) (string, string, bool) {
	reqData.CustomerID = strings.TrimSpace(reqData.CustomerID)

	// Validate Customer ID
	if len(reqData.CustomerID) < 7 {
		return "customerId", "Customer ID must be 7 digits", false
	}
	// The id must parse as a number. ParseFloat admits decimal forms only;
	// exotic encodings such as hex strings are rejected.
	if _, err := strconv.ParseFloat(reqData.CustomerID, 64); err != nil {
		return "customerId", "Customer ID must be 7 digits", false
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
