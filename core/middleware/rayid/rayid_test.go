package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(New())

	var local any
	app.Get("/", func(c *fiber.Ctx) error {
		local = c.Locals("ray_id")
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(HeaderName)
	assert.NotEmpty(t, header)
	assert.Equal(t, header, local)

	_, err = uuid.Parse(header)
	assert.NoError(t, err)
}
