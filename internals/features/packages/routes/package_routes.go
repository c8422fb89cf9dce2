package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingrepo "tourstravels_backend/internals/features/bookings/repository"
	"tourstravels_backend/internals/features/packages/controller"
	"tourstravels_backend/internals/features/packages/repository"
	"tourstravels_backend/internals/features/packages/service"
	userrepo "tourstravels_backend/internals/features/users/repository"
)

func newController(db *gorm.DB) *controller.PackageController {
	svc := service.NewPackageService(
		repository.NewPackageRepository(db),
		userrepo.NewUserRepository(db),
		bookingrepo.NewBookingRepository(db),
	)
	return controller.NewPackageController(svc)
}

// PublicPackageRoutes: browsing approved packages needs no login.
func PublicPackageRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := newController(db)
	app.Get("/api/packages", ctrl.ListApproved)
}

// AgentPackageRoutes mounts under the role-gated /api/agent group.
func AgentPackageRoutes(agent fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	agent.Post("/packages", ctrl.Create)
	agent.Get("/packages", ctrl.MyPackages)
	agent.Put("/packages/:id", ctrl.Update)
	agent.Delete("/packages/:id", ctrl.Delete)
	agent.Post("/packages/:id/images", ctrl.UploadImages)
	agent.Post("/packages/:id/image-urls", ctrl.AddImageURLs)
}

// AdminPackageRoutes mounts under the role-gated /api/admin group.
func AdminPackageRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	admin.Get("/packages/pending", ctrl.ListPending)
	admin.Put("/packages/approve/:id", ctrl.Approve)
	admin.Put("/packages/reject/:id", ctrl.Reject)
}

// CustomerPackageRoutes mounts under the role-gated /api/customer group.
func CustomerPackageRoutes(customer fiber.Router, db *gorm.DB) {
	ctrl := newController(db)
	customer.Get("/packages", ctrl.ListApproved)
}
