package employeeRoutes

import (
	"github.com/gofiber/fiber/v2"

	employeeController "fincore/controllers/employee"
	"fincore/middleware"
	employeeValidator "fincore/validators/employee"
)

func SetupEmployeeRoutes(app *fiber.App) {
	employeeGroup := app.Group("/employee")

	employeeGroup.Get("/register", employeeController.RegisterForm)
	employeeGroup.Post("/register", employeeValidator.Register(), employeeController.Register)
	employeeGroup.Post("/login", employeeValidator.Login(), employeeController.Login)
	employeeGroup.Get("/dashboard", middleware.EmployeeSession, employeeController.Dashboard)
	employeeGroup.Post("/logout", employeeController.Logout)
}
