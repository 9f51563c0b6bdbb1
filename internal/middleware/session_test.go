package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runResolve(t *testing.T, store *session.Store, param string) (*httptest.ResponseRecorder, *session.Session, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+param+"/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(SessionIDParam)
	c.SetParamValues(param)

	var resolved *session.Session
	called := false
	handler := func(c echo.Context) error {
		called = true
		resolved = GetSession(c)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, ResolveSession(store)(handler)(c))
	return rec, resolved, called
}

func TestResolveSession_Known(t *testing.T) {
	store := session.NewStore(0, nil)
	defer store.Stop()
	sess := store.Create()

	rec, resolved, called := runResolve(t, store, sess.ID.String())

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, sess, resolved)
}

func TestResolveSession_Unknown(t *testing.T) {
	store := session.NewStore(0, nil)
	defer store.Stop()

	rec, _, called := runResolve(t, store, "9b2f4c1e-0000-4000-8000-000000000000")

	assert.False(t, called)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), errorTypeNotFound)
}

func TestResolveSession_Malformed(t *testing.T) {
	store := session.NewStore(0, nil)
	defer store.Stop()

	rec, _, called := runResolve(t, store, "not-a-uuid")

	assert.False(t, called)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSession_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, GetSession(c))
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", GetSessionID(c).String())
}
