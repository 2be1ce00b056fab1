package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() echo.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestSetAndGetApplication(t *testing.T) {
	t.Parallel()

	c := newTestContext()
	SetApplication(c, &Application{ID: "dashboard", Title: "웹 대시보드"})

	app, err := GetApplication(c)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", app.ID)
	assert.Equal(t, "dashboard", c.Get(constants.ContextKeyApplicationID))
}

func TestGetApplication_Errors(t *testing.T) {
	t.Parallel()

	t.Run("값 없음", func(t *testing.T) {
		t.Parallel()

		_, err := GetApplication(newTestContext())
		assert.ErrorIs(t, err, ErrApplicationMissingInContext)
	})

	t.Run("타입 불일치", func(t *testing.T) {
		t.Parallel()

		c := newTestContext()
		c.Set(contextKeyApplication, "dashboard")

		_, err := GetApplication(c)
		assert.ErrorIs(t, err, ErrApplicationTypeMismatch)
	})
}

func TestMustGetApplication(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustGetApplication(newTestContext())
	})

	c := newTestContext()
	SetApplication(c, &Application{ID: "batch"})
	assert.Equal(t, "batch", MustGetApplication(c).ID)
}
