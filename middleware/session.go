package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fincore/store"
)

// CustomerSession guards customer views: the logged-in flag must be exactly
// "true" and an identifier must be present, otherwise the client is sent
// back to the login view. Checked once per request, not enforced after.
func CustomerSession(c *fiber.Ctx) error {
	return requireSession(c, store.KeyCustomerLoggedIn, store.KeyCustomerID, "/customer-login")
}

// EmployeeSession guards employee views.
func EmployeeSession(c *fiber.Ctx) error {
	return requireSession(c, store.KeyEmployeeLoggedIn, store.KeyEmployeeID, "/employee-login")
}

func requireSession(c *fiber.Ctx, flagKey, idKey, loginRoute string) error {
	flag, err := store.Default.Get(flagKey)
	if err != nil {
		log.Printf("Failed to read session flag %s: %v", flagKey, err)
	}
	id, err := store.Default.Get(idKey)
	if err != nil {
		log.Printf("Failed to read session id %s: %v", idKey, err)
	}

	if flag != "true" || id == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in!", fiber.Map{
			"redirect": loginRoute,
		})
	}

	// Set the session identifier in the request context
	c.Locals("sessionId", id)
	return c.Next()
}
