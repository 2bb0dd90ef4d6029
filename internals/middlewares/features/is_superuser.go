package features

import (
	"github.com/gofiber/fiber/v2"

	helper "sigi_backend/internals/helpers"
	authMiddleware "sigi_backend/internals/middlewares/auth"
	"sigi_backend/internals/policy"
)

// IsSuperuser guards the global admin surface (/api/a).
func IsSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := authMiddleware.ActorFromLocals(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if d := policy.SuperuserOnly(actor); !d.Allowed {
			return helper.JsonError(c, fiber.StatusForbidden, d.Reason)
		}
		return c.Next()
	}
}
