package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/features/bookings/controller"
	"tourstravels_backend/internals/features/bookings/repository"
	"tourstravels_backend/internals/features/bookings/service"
	packagerepo "tourstravels_backend/internals/features/packages/repository"
	userrepo "tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/helpers/sms"
)

func newController(db *gorm.DB) *controller.BookingController {
	svc := service.NewBookingService(
		repository.NewBookingRepository(db),
		packagerepo.NewPackageRepository(db),
		userrepo.NewUserRepository(db),
		sms.New(),
	)
	return controller.NewBookingController(svc)
}

// CustomerBookingRoutes mounts under the role-gated /api/customer group.
func CustomerBookingRoutes(customer fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	customer.Post("/bookings", ctrl.Create)
	customer.Get("/bookings", ctrl.MyBookings)
	customer.Put("/bookings/cancel/:id", ctrl.CancelByCustomer)
}

// AgentBookingRoutes mounts under the role-gated /api/agent group.
func AgentBookingRoutes(agent fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	agent.Get("/bookings", ctrl.AgentBookings)
	agent.Put("/bookings/approve/:id", ctrl.AgentApprove)
	agent.Put("/bookings/reject/:id", ctrl.AgentReject)
}

// AdminBookingRoutes mounts under the role-gated /api/admin group.
func AdminBookingRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	admin.Get("/bookings", ctrl.ListAll)
	admin.Put("/bookings/confirm/:id", ctrl.AdminConfirm)
	admin.Put("/bookings/cancel/:id", ctrl.AdminCancel)
}
