package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/activos-api/internal/domain"
	"github.com/jhoicas/activos-api/pkg/logger"
)

func TestErrorResponse_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.Invalid("quantity debe ser mayor que 0"), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", fmt.Errorf("ítem 9: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"stock insuficiente", &domain.InsufficientStockError{ItemID: 1, Requested: 5, Available: 2}, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"stock insuficiente envuelto", fmt.Errorf("baja: %w", &domain.InsufficientStockError{ItemID: 1}), fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"no disponible", fmt.Errorf("stock.list: %w: %w", domain.ErrUnavailable, errors.New("dial tcp")), fiber.StatusServiceUnavailable, "UNAVAILABLE"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{"sin autenticar", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"desconocido", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := errorResponse(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestErrorResponse_InternoNoFiltraDetalle(t *testing.T) {
	_, body := errorResponse(errors.New("pq: password authentication failed"))
	assert.NotContains(t, body.Message, "password")
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/x/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for path, want := range map[string]int{"/x/7": 200, "/x/abc": 400, "/x/0": 400, "/x/-3": 400} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

func TestRequestLogger_PropagaStatus(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(logger.Nop()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "tetera") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
