package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/mocks"
	"github.com/ElliottBolan/stock-news-sentiment/usecase/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func runAuthMiddleware(t *testing.T, m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, *domain.UserContext, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.UserContext
	handler := m.RequireAuth()(func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return err
		}
		captured = user
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	return rec, captured, err
}

func TestAuthMiddleware_SessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testutil.CreateMockUser()

	mockAuth := mocks.NewMockAuthPort(ctrl)
	mockAuth.EXPECT().ValidateSession(gomock.Any(), "cookie-token").Return(user, nil).Times(1)

	m := NewAuthMiddleware(mockAuth, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "cookie-token"})

	_, captured, err := runAuthMiddleware(t, m, req)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, user.UserID, captured.UserID)
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testutil.CreateMockUser()

	mockAuth := mocks.NewMockAuthPort(ctrl)
	mockAuth.EXPECT().ValidateSession(gomock.Any(), "bearer-token").Return(user, nil).Times(1)

	m := NewAuthMiddleware(mockAuth, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil)
	req.Header.Set("Authorization", "Bearer bearer-token")

	_, captured, err := runAuthMiddleware(t, m, req)
	require.NoError(t, err)
	require.NotNil(t, captured)
}

func TestAuthMiddleware_MissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthPort(ctrl)
	m := NewAuthMiddleware(mockAuth, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil)

	_, _, err := runAuthMiddleware(t, m, req)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_InvalidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthPort(ctrl)
	mockAuth.EXPECT().ValidateSession(gomock.Any(), "bad-token").
		Return(nil, domain.ErrUnauthorized).Times(1)

	m := NewAuthMiddleware(mockAuth, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "bad-token"})

	_, _, err := runAuthMiddleware(t, m, req)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthMiddleware_ExpiredUserContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expired := testutil.CreateMockUser()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	mockAuth := mocks.NewMockAuthPort(ctrl)
	mockAuth.EXPECT().ValidateSession(gomock.Any(), "stale-token").Return(expired, nil).Times(1)

	m := NewAuthMiddleware(mockAuth, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale-token"})

	_, _, err := runAuthMiddleware(t, m, req)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
