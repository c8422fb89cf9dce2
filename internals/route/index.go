package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/constants"
	bookingRoutes "tourstravels_backend/internals/features/bookings/routes"
	packageRoutes "tourstravels_backend/internals/features/packages/routes"
	paymentRoutes "tourstravels_backend/internals/features/payments/routes"
	userRoutes "tourstravels_backend/internals/features/users/routes"
	authMiddleware "tourstravels_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature onto the app. Three role-gated groups
// share the same JWT middleware; each feature mounts its slice of routes
// into the groups it serves.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🌐 Public
	userRoutes.AuthRoutes(app, db)
	packageRoutes.PublicPackageRoutes(app, db)
	app.Static("/uploads", "./uploads")

	// 🔐 ADMIN
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminCanAccess, constants.RoleAdmin),
	)
	userRoutes.AdminUserRoutes(admin, db)
	packageRoutes.AdminPackageRoutes(admin, db)
	bookingRoutes.AdminBookingRoutes(admin, db)
	paymentRoutes.AdminPaymentRoutes(admin, db)

	// 🔐 AGENT
	agent := app.Group("/api/agent",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyAgentCanAccess, constants.RoleAgent),
	)
	packageRoutes.AgentPackageRoutes(agent, db)
	bookingRoutes.AgentBookingRoutes(agent, db)

	// 🔐 CUSTOMER
	customer := app.Group("/api/customer",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrOnlyCustomerCanAccess, constants.RoleCustomer),
	)
	userRoutes.CustomerProfileRoutes(customer, db)
	packageRoutes.CustomerPackageRoutes(customer, db)
	bookingRoutes.CustomerBookingRoutes(customer, db)
	paymentRoutes.CustomerPaymentRoutes(customer, db)
}
