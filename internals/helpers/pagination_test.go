package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolve(t, "/items")
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)

	p = resolve(t, "/items?page=3&per_page=10")
	assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)

	// per_page is capped, bad page falls back to 1
	p = resolve(t, "/items?page=-5&per_page=500")
	assert.Equal(t, Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}, p)

	// legacy skip/limit aliases
	p = resolve(t, "/items?skip=40&limit=10")
	assert.Equal(t, Paging{Page: 5, PerPage: 10, Offset: 40, Limit: 10}, p)
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(60, 3, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
