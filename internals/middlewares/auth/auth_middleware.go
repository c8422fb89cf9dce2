package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourstravels_backend/internals/configs"
	"tourstravels_backend/internals/constants"
	usermodel "tourstravels_backend/internals/features/users/model"
)

// AuthMiddleware validates the bearer token, rejects blacklisted tokens,
// blocks unapproved agents and stores identity claims in locals
// (user_id, userRole, user_name, token).
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Blacklisted tokens (logout) are refused even when still valid.
		var blacklisted usermodel.TokenBlacklistModel
		if err := db.Where("token = ?", tokenString).First(&blacklisted).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] blacklist lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid or expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		role, _ := claims["role"].(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role claim")
		}

		// An AGENT whose registration is not yet approved may hold an old
		// token; re-check approval on every protected call.
		if role == constants.RoleAgent {
			if err := ensureAgentApproved(db, userID); err != nil {
				return err
			}
		}

		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		c.Locals("token", tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - missing Authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - malformed Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id claim missing")
	}
	return uuid.Parse(raw)
}

func ensureAgentApproved(db *gorm.DB, userID uuid.UUID) error {
	var user usermodel.UserModel
	if err := db.Select("user_id", "user_is_approved").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
	}
	if user.UserIsApproved == nil || !*user.UserIsApproved {
		return fiber.NewError(fiber.StatusForbidden, "Your registration is pending admin approval")
	}
	return nil
}
