package customerController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
	"fincore/models"
	"fincore/store"
	customerValidator "fincore/validators/customer"
)

// Login marks the customer as logged in. The credential pair is only checked
// for shape by the validator; nothing compares it against stored records.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*customerValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := store.Default.Set(store.KeyCustomerID, reqData.CustomerID); err != nil {
		// Store unavailable: fall back to a direct navigation.
		log.Printf("Failed to persist customer session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in.", fiber.Map{
			"redirect": "/customer-dashboard",
		})
	}
	if err := store.Default.Set(store.KeyCustomerLoggedIn, "true"); err != nil {
		log.Printf("Failed to persist customer login flag: %v", err)
	}

	log.Printf("Customer logged in: %s", reqData.CustomerID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in.", fiber.Map{
		"customerId": reqData.CustomerID,
		"redirect":   "/customer-dashboard",
	})
}

// FindCustomer returns the first record whose ssn equals id, or nil.
func FindCustomer(customers []models.Customer, id string) *models.Customer {
	for i := range customers {
		if customers[i].SSN == id {
			return &customers[i]
		}
	}
	return nil
}

// Dashboard renders the customer's own record. A missing record is a
// warning, not an error: the view degrades to a blank customer section.
func Dashboard(c *fiber.Ctx) error {
	customerID, _ := c.Locals("sessionId").(string)
	welcome := fmt.Sprintf("Welcome, Customer #%s", customerID)

	var customers []models.Customer
	if err := store.GetList(store.Default, store.KeyCustomers, &customers); err != nil {
		log.Printf("Failed to load customer data: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard loaded.", fiber.Map{
			"welcomeMessage": welcome,
			"customer":       nil,
		})
	}

	customer := FindCustomer(customers, customerID)
	if customer == nil {
		log.Printf("Customer data not found for ID: %s", customerID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard loaded.", fiber.Map{
		"welcomeMessage": welcome,
		"customer":       customer,
	})
}

// Logout clears the customer session, but only when the client confirms.
func Logout(c *fiber.Ctx) error {
	reqData := new(struct {
		Confirm bool `json:"confirm"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !reqData.Confirm {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logout cancelled.", nil)
	}

	if err := store.Default.Remove(store.KeyCustomerID); err != nil {
		log.Printf("Failed to clear customer id: %v", err)
	}
	if err := store.Default.Remove(store.KeyCustomerLoggedIn); err != nil {
		log.Printf("Failed to clear customer login flag: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", fiber.Map{
		"redirect": "/customer-login",
	})
}
