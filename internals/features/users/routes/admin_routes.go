package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tourstravels_backend/internals/configs"
	"tourstravels_backend/internals/features/users/controller"
	"tourstravels_backend/internals/features/users/repository"
	"tourstravels_backend/internals/features/users/service"
	"tourstravels_backend/internals/helpers/sms"
)

// AdminUserRoutes: agent registration queue + user listings + SMS test,
// mounted under the role-gated /api/admin group.
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	svc := service.NewAuthService(repository.NewUserRepository(db), configs.JWTSecret)
	ctrl := controller.NewAdminAgentController(svc, sms.New())

	admin.Get("/users", ctrl.ListUsers)
	admin.Get("/agents", ctrl.ListAgents)
	admin.Get("/agents/pending", ctrl.ListPendingAgents)
	admin.Get("/agents/approved", ctrl.ListApprovedAgents)
	admin.Put("/agents/approve/:id", ctrl.ApproveAgent)
	admin.Put("/agents/reject/:id", ctrl.RejectAgent)
	admin.Post("/agents", ctrl.CreateAgent)
	admin.Post("/sms/test", ctrl.TestSms)
}
