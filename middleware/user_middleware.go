package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "crewtime-backend/lib/utils/auth-utils"
	"crewtime-backend/models"
	apimodels "crewtime-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func ManagerRequired() fiber.Handler {
	return roleRequired(models.UserRoleManager)
}

func AdminRequired() fiber.Handler {
	return roleRequired(models.UserRoleAdmin)
}

func SuperAdminRequired() fiber.Handler {
	return roleRequired(models.UserRoleSuperAdmin)
}

func roleRequired(required models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).AtLeast(required) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}
