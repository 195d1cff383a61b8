package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authService "sekolahku_backend/internals/features/users/auth/service"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

const testSecret = "middleware-test-secret"

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: secret}))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": helper.GetUsernameFromLocals(c),
			"role":     helper.GetRoleFromLocals(c),
			"code":     helper.GetUserCodeFromLocals(c),
		})
	})
	return app
}

func TestAuthJWTRoundTrip(t *testing.T) {
	configs.JWTSecret = testSecret

	token, err := authService.SignAccessToken(&userModel.UserModel{
		UserName: "principal_s1",
		Role:     constants.RolePrincipal,
		UserCode: "PRINCIPAL_S1",
	})
	require.NoError(t, err)

	app := newProtectedApp(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthJWTRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(testSecret)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsMalformedHeader(t *testing.T) {
	app := newProtectedApp(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Token abc.def.ghi")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWTRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "some-other-secret"

	token, err := authService.SignAccessToken(&userModel.UserModel{
		UserName: "principal_s1",
		Role:     constants.RolePrincipal,
		UserCode: "PRINCIPAL_S1",
	})
	require.NoError(t, err)

	app := newProtectedApp(testSecret)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
