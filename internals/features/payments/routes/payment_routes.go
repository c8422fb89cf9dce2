package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/features/payments/controller"
	"tourstravels_backend/internals/features/payments/repository"
	"tourstravels_backend/internals/features/payments/service"
	userrepo "tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/helpers/sms"
)

func newController(db *gorm.DB) *controller.PaymentController {
	svc := service.NewPaymentService(
		repository.NewPaymentRepository(db),
		userrepo.NewUserRepository(db),
		service.NewSnapGateway(),
		sms.New(),
	)
	return controller.NewPaymentController(svc)
}

// CustomerPaymentRoutes mounts under the role-gated /api/customer group.
func CustomerPaymentRoutes(customer fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	customer.Post("/payments/pay/:bookingId", ctrl.Pay)
	customer.Get("/payments", ctrl.MyPayments)
}

// AdminPaymentRoutes mounts under the role-gated /api/admin group.
func AdminPaymentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	admin.Get("/payments", ctrl.ListAll)
	admin.Get("/payments/stats", ctrl.Stats)
	admin.Put("/payments/confirm/:id", ctrl.Confirm)
	admin.Put("/payments/refund/:id", ctrl.Refund)
}
