package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tourstravels_backend/internals/constants"
)

// Principal is the authenticated actor passed explicitly into every
// service operation. No service reads ambient auth state.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool    { return p.Role == constants.RoleAdmin }
func (p Principal) IsAgent() bool    { return p.Role == constants.RoleAgent }
func (p Principal) IsCustomer() bool { return p.Role == constants.RoleCustomer }

// PrincipalFromContext rebuilds the Principal from the locals set by the
// auth middleware. Returns 401 when the request never passed through it.
func PrincipalFromContext(c *fiber.Ctx) (Principal, error) {
	idStr, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("userRole").(string)
	if idStr == "" || role == "" {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing identity")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return Principal{UserID: id, Role: role}, nil
}
