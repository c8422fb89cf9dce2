package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/configs"
	"tourstravels_backend/internals/features/users/controller"
	"tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/features/users/service"
)

// CustomerProfileRoutes: profile read/update under /api/customer.
func CustomerProfileRoutes(customer fiber.Router, db *gorm.DB) {
	svc := service.NewAuthService(repository.NewUserRepository(db), configs.JWTSecret)
	ctrl := controller.NewProfileController(svc)

	customer.Get("/profile", ctrl.GetProfile)
	customer.Put("/profile", ctrl.UpdateProfile)
}
