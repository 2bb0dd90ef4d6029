package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The lookup endpoint answers an empty list for absent or malformed state ids
// before touching storage, so a nil DB is enough here.
func TestMunicipalitiesByStateWithoutState(t *testing.T) {
	ctrl := NewDirectoryController(nil)
	app := fiber.New()
	app.Get("/municipalities", ctrl.MunicipalitiesByState)

	for _, target := range []string{
		"/municipalities",
		"/municipalities?state_id=",
		"/municipalities?state_id=not-a-uuid",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err, target)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var body struct {
			Status string            `json:"status"`
			Data   []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &body), target)
		assert.Equal(t, "success", body.Status, target)
		assert.Empty(t, body.Data, target)
		assert.NotNil(t, body.Data, target)
	}
}
