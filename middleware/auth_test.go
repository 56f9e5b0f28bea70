package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"licenca_flow_go/db"
	"licenca_flow_go/models"
	"licenca_flow_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Profile{}, &models.Session{}))
	db.DB = gdb
}

func authRequest(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inscricao/draft", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuthNoCookie(t *testing.T) {
	setupAuthTest(t)

	c, _ := authRequest("")
	handler := RequireAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	setupAuthTest(t)

	c, _ := authRequest("deadbeef")
	handler := RequireAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireAuthValidSession(t *testing.T) {
	setupAuthTest(t)

	profile := models.Profile{Email: "analista@example.com", Name: "Analista", IsActive: true}
	require.NoError(t, db.DB.Create(&profile).Error)
	session, err := services.CreateSession(db.DB, profile.ID)
	require.NoError(t, err)

	c, rec := authRequest(session.Token)
	handler := RequireAuth()(func(c echo.Context) error {
		current := GetCurrentProfile(c)
		require.NotNil(t, current)
		assert.Equal(t, profile.ID, current.ID)
		require.NotNil(t, GetCurrentSession(c))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAuthInactiveProfile(t *testing.T) {
	setupAuthTest(t)

	profile := models.Profile{Email: "inativo@example.com", Name: "Inativo", IsActive: true}
	require.NoError(t, db.DB.Create(&profile).Error)
	require.NoError(t, db.DB.Model(&profile).Update("is_active", false).Error)
	session, err := services.CreateSession(db.DB, profile.ID)
	require.NoError(t, err)

	c, _ := authRequest(session.Token)
	handler := RequireAuth()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err = handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
