package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/thevanityindia/vanity-server/internal/api/http/context"
	"github.com/thevanityindia/vanity-server/internal/api/http/handler"
	"github.com/thevanityindia/vanity-server/internal/mocks"
	"github.com/thevanityindia/vanity-server/internal/model"
	"github.com/thevanityindia/vanity-server/internal/testutil"
)

type stubTokenService struct {
	userID uuid.UUID
	err    error
}

func (s *stubTokenService) GetUserID(_ context.Context, _ string) (uuid.UUID, error) {
	return s.userID, s.err
}

func newAuthenticate(tokenService TokenService, userStore UserStore) *Authenticate {
	return NewAuthenticate(tokenService, userStore, httpctx.NewManager(), handler.WriteError, testutil.MakeNoopLogger())
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m := newAuthenticate(&stubTokenService{}, &mocks.UserStore{})

	next := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := newAuthenticate(&stubTokenService{err: assert.AnError}, &mocks.UserStore{})

	next := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InjectsUserID(t *testing.T) {
	userID := uuid.New()
	m := newAuthenticate(&stubTokenService{userID: userID}, &mocks.UserStore{})
	ctxMgr := httpctx.NewManager()

	var seen uuid.UUID
	next := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ctxMgr.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	assert.Equal(t, userID, seen)
}

func TestRequireAdmin(t *testing.T) {
	customerID := uuid.New()
	adminID := uuid.New()
	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, customerID).Return(model.User{ID: customerID, Role: model.RoleCustomer}, nil)
	userStore.On("GetByID", mock.Anything, adminID).Return(model.User{ID: adminID, Role: model.RoleAdmin}, nil)

	tokenService := &stubTokenService{userID: customerID}
	m := newAuthenticate(tokenService, userStore)

	var ran bool
	wrapped := m.Handler(m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer tok")

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, ran)

	tokenService.userID = adminID
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ran)
}
