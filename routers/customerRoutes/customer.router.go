package customerRoutes

import (
	"github.com/gofiber/fiber/v2"

	customerController "fincore/controllers/customer"
	"fincore/middleware"
	customerValidator "fincore/validators/customer"
)

func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customer")

	customerGroup.Post("/login", customerValidator.Login(), customerController.Login)
	customerGroup.Get("/dashboard", middleware.CustomerSession, customerController.Dashboard)
	customerGroup.Post("/logout", customerController.Logout)
}
