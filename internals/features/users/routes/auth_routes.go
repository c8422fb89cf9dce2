package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/configs"
	"tourstravels_backend/internals/features/users/controller"
	"tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/features/users/service"
	authMiddleware "tourstravels_backend/internals/middlewares/auth"
)

// AuthRoutes: public registration/login + authenticated logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	svc := service.NewAuthService(repository.NewUserRepository(db), configs.JWTSecret)
	ctrl := controller.NewAuthController(db, svc)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.RegisterCustomer)
	auth.Post("/register-agent", ctrl.RegisterAgent)
	auth.Post("/login", ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
