package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/registries-console/internal/interfaces/http"
	"github.com/tu-usuario/registries-console/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// newProtectedApp app mínima con el middleware bajo prueba y un handler que
// expone lo que quedó en Locals.
func newProtectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{apphttp.AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username":      apphttp.GetUsername(c),
			"role":          apphttp.GetRole(c),
			"authorization": apphttp.GetAuthorization(c),
		})
	})
	app.Get("/protegido", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*nethttp.Response, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	if len(body) > 0 {
		_ = json.Unmarshal(body, &payload)
	}
	return resp, payload
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	token, err := jwt.Generate(testSecret, "maria", "ADMIN", "registries-console", 15)
	require.NoError(t, err)

	resp, payload := doRequest(t, newProtectedApp(), "Bearer "+token)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, "maria", payload["username"])
	assert.Equal(t, "ADMIN", payload["role"])
	assert.Equal(t, "Bearer "+token, payload["authorization"],
		"la cabecera cruda queda disponible para reenviar al record store")
}

func TestAuthMiddleware_SinCabecera(t *testing.T) {
	resp, payload := doRequest(t, newProtectedApp(), "")

	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", payload["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	resp, payload := doRequest(t, newProtectedApp(), "Basic dXNlcjpwYXNz")

	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", payload["code"])
}

func TestAuthMiddleware_TokenConFirmaAjena(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "maria", "ADMIN", "registries-console", 15)
	require.NoError(t, err)

	resp, payload := doRequest(t, newProtectedApp(), "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", payload["code"])
}

func TestRequireRole_RolPermitido(t *testing.T) {
	token, err := jwt.Generate(testSecret, "maria", "AUDITOR", "registries-console", 15)
	require.NoError(t, err)

	app := newProtectedApp(apphttp.RequireRole("SUPER_ADMIN", "ADMIN", "ACCOUNTANT", "AUDITOR"))
	resp, _ := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolSinAcceso(t *testing.T) {
	token, err := jwt.Generate(testSecret, "pedro", "CASHIER", "registries-console", 15)
	require.NoError(t, err)

	app := newProtectedApp(apphttp.RequireRole("SUPER_ADMIN", "ADMIN", "ACCOUNTANT", "AUDITOR"))
	resp, payload := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", payload["code"])
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	token, err := jwt.Generate(testSecret, "maria", "", "registries-console", 15)
	require.NoError(t, err)

	app := newProtectedApp(apphttp.RequireRole("ADMIN"))
	resp, payload := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", payload["code"])
}
