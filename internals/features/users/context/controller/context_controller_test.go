package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authMiddleware "sigi_backend/internals/middlewares/auth"
	"sigi_backend/internals/policy"
)

func appWithActor(ctrl *ContextController, actor *policy.Actor) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actor != nil {
			c.Locals(authMiddleware.LocalsActor, *actor)
		}
		return c.Next()
	})
	app.Post("/context/institutions/:id/enter", ctrl.EnterInstitution)
	app.Post("/context/exit", ctrl.ExitInstitution)
	return app
}

// Entering a managing context is refused before any storage access for
// everyone but superusers, so these run against a nil DB.
func TestEnterInstitutionRejections(t *testing.T) {
	ctrl := NewContextController(nil)
	instID := uuid.New()
	enterPath := "/context/institutions/" + instID.String() + "/enter"

	t.Run("no actor gets 401", func(t *testing.T) {
		app := appWithActor(ctrl, nil)
		resp, err := app.Test(httptest.NewRequest("POST", enterPath, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("institution admin gets 403", func(t *testing.T) {
		app := appWithActor(ctrl, &policy.Actor{
			UserID:             uuid.New(),
			InstitutionID:      &instID,
			IsInstitutionAdmin: true,
		})
		resp, err := app.Test(httptest.NewRequest("POST", enterPath, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("superuser with malformed id gets 400", func(t *testing.T) {
		app := appWithActor(ctrl, &policy.Actor{UserID: uuid.New(), IsSuperuser: true})
		resp, err := app.Test(httptest.NewRequest("POST", "/context/institutions/not-a-uuid/enter", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestExitInstitutionRejections(t *testing.T) {
	ctrl := NewContextController(nil)

	t.Run("no actor gets 401", func(t *testing.T) {
		app := appWithActor(ctrl, nil)
		resp, err := app.Test(httptest.NewRequest("POST", "/context/exit", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("regular member gets 403", func(t *testing.T) {
		app := appWithActor(ctrl, &policy.Actor{UserID: uuid.New()})
		resp, err := app.Test(httptest.NewRequest("POST", "/context/exit", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
