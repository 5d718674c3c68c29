package employeeController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"fincore/middleware"
	"fincore/models"
	"fincore/store"
	"fincore/utils"
	employeeValidator "fincore/validators/employee"
)

// RegisterForm initializes the registration form. The employee id is minted
// here, once per form load; reloading the form discards it and mints a new
// one without checking the list for collisions.
func RegisterForm(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registration form ready.", fiber.Map{
		"employeeId": utils.GenerateEmployeeID(),
	})
}

// Register appends the validated employee to the stored list. A failed save
// leaves the list untouched and surfaces a generic error on the first field.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEmployee").(*employeeValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	employee := models.Employee{
		EmployeeID:    reqData.EmployeeID,
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		Email:         reqData.Email,
		Address:       reqData.Address,
		ContactNumber: reqData.ContactNumber,
		Gender:        reqData.Gender,
		DateOfBirth:   reqData.DateOfBirth,
		Aadhaar:       reqData.Aadhaar,
		PAN:           reqData.PAN,
		Role:          reqData.Role,
	}

	var employees []models.Employee
	if err := store.GetList(store.Default, store.KeyEmployees, &employees); err != nil {
		log.Printf("Failed to load employee list: %v", err)
		return saveFailure(c)
	}

	employees = append(employees, employee)
	if err := store.SetList(store.Default, store.KeyEmployees, employees); err != nil {
		log.Printf("Failed to persist employee data: %v", err)
		return saveFailure(c)
	}

	fullName := employee.FirstName + " " + employee.LastName

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Employee registered successfully.", fiber.Map{
		"employeeId": employee.EmployeeID,
		"fullName":   fullName,
		"email":      employee.Email,
		"redirect":   "/employee-login",
	})
}

func saveFailure(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save employee data.", map[string]string{
		"firstName": "Failed to save employee data.",
	})
}

// Login marks the employee as logged in; like customer login, the password
// is never verified against a stored record.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*employeeValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := store.Default.Set(store.KeyEmployeeID, reqData.EmployeeID); err != nil {
		log.Printf("Failed to persist employee session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in.", fiber.Map{
			"redirect": "/employee-dashboard",
		})
	}
	if err := store.Default.Set(store.KeyEmployeeLoggedIn, "true"); err != nil {
		log.Printf("Failed to persist employee login flag: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in.", fiber.Map{
		"employeeId": reqData.EmployeeID,
		"redirect":   "/employee-dashboard",
	})
}

// Logout clears the employee session when confirmed. The id is removed but
// the flag is written as "false" rather than removed; the customer flow
// removes both.
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

	if err := store.Default.Remove(store.KeyEmployeeID); err != nil {
		log.Printf("Failed to clear employee id: %v", err)
	}
	if err := store.Default.Set(store.KeyEmployeeLoggedIn, "false"); err != nil {
		log.Printf("Failed to clear employee login flag: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", fiber.Map{
		"redirect": "/employee-login",
	})
}
