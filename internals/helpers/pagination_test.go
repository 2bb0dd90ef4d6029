package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := resolveOn(t, "/", 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("explicit page and per_page", func(t *testing.T) {
		p := resolveOn(t, "/?page=3&per_page=10", 20, 100)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PerPage)
		assert.Equal(t, 20, p.Offset)
	})

	t.Run("limit alias", func(t *testing.T) {
		p := resolveOn(t, "/?limit=7", 20, 100)
		assert.Equal(t, 7, p.PerPage)
	})

	t.Run("clamped to max", func(t *testing.T) {
		p := resolveOn(t, "/?per_page=9999", 20, 100)
		assert.Equal(t, 100, p.PerPage)
	})

	t.Run("garbage falls back", func(t *testing.T) {
		p := resolveOn(t, "/?page=x&per_page=-1", 20, 100)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		pg := BuildPaginationFromPage(45, 2, 20)
		assert.Equal(t, 3, pg.TotalPages)
		assert.True(t, pg.HasNext)
		assert.True(t, pg.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		pg := BuildPaginationFromPage(0, 1, 20)
		assert.Equal(t, 1, pg.TotalPages)
		assert.False(t, pg.HasNext)
		assert.False(t, pg.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		pg := BuildPaginationFromPage(40, 2, 20)
		assert.Equal(t, 2, pg.TotalPages)
		assert.False(t, pg.HasNext)
	})
}
