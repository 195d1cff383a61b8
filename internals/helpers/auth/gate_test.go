package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
)

// requireStatus runs Require inside a real handler so the fiber error
// handler translates the returned error into a status code.
func requireStatus(t *testing.T, role string, allowed ...string) int {
	t.Helper()

	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helper.LocRole, role)
		}
		if err := Require(c, allowed...); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestRequire(t *testing.T) {
	assert.Equal(t, http.StatusOK,
		requireStatus(t, constants.RolePrincipal, constants.RolePrincipal))
	assert.Equal(t, http.StatusOK,
		requireStatus(t, constants.RoleTeacher, constants.RolePrincipal, constants.RoleTeacher))

	assert.Equal(t, http.StatusForbidden,
		requireStatus(t, constants.RoleTeacher, constants.RolePrincipal))
	assert.Equal(t, http.StatusForbidden,
		requireStatus(t, constants.RoleSuperAdmin, constants.RolePrincipal))

	// no token hydration at all
	assert.Equal(t, http.StatusUnauthorized,
		requireStatus(t, "", constants.RolePrincipal))
}

func stubPredicate(ok bool, err error, called *int) Predicate {
	return func(db *gorm.DB) (bool, error) {
		*called++
		return ok, err
	}
}

func ensureStatus(t *testing.T, preds ...Predicate) int {
	t.Helper()

	db := &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}

	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		if err := Ensure(c, db, preds...); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestEnsureAllHold(t *testing.T) {
	var calls int
	status := ensureStatus(t,
		stubPredicate(true, nil, &calls),
		stubPredicate(true, nil, &calls),
	)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, calls)
}

func TestEnsureOwnershipFailureIsNotFound(t *testing.T) {
	var calls int
	status := ensureStatus(t,
		stubPredicate(false, nil, &calls),
		stubPredicate(true, nil, &calls),
	)
	// out-of-tenancy must look identical to missing
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 1, calls, "first false predicate short-circuits")
}

func TestEnsureStoreErrorIsInternal(t *testing.T) {
	var calls int
	status := ensureStatus(t,
		stubPredicate(false, errors.New("connection reset"), &calls),
	)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestEnsureNoPredicates(t *testing.T) {
	assert.Equal(t, http.StatusOK, ensureStatus(t))
}
