package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, username, password string) (*dmn.User, error) {
	args := m.Called(username, password)
	u, _ := args.Get(0).(*dmn.User)
	return u, args.Error(1)
}

func (m *mockAuth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	args := m.Called(username, password)
	u, _ := args.Get(0).(*dmn.User)
	return u, args.String(1), args.Error(2)
}

func newEngine(a *mockAuth) *gin.Engine {
	r := gin.New()
	NewIdentityServer(a).RegisterPublic(r.Group("/v1"))
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestIdentityServer_Register(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		a := &mockAuth{}
		id := uuid.New()
		a.On("Register", "walker", "s3cret-Pass").Return(&dmn.User{ID: id, Username: "walker"}, nil)

		w := post(newEngine(a), "/v1/auth/register", `{"username":"walker","password":"s3cret-Pass"}`)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := post(newEngine(&mockAuth{}), "/v1/auth/register", `{"username":"walker"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		a := &mockAuth{}
		a.On("Register", "walker", "pw").Return(nil, dmn.ErrUsernameConflict)

		w := post(newEngine(a), "/v1/auth/register", `{"username":"walker","password":"pw"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestIdentityServer_Login(t *testing.T) {
	t.Run("Token issued", func(t *testing.T) {
		a := &mockAuth{}
		id := uuid.New()
		a.On("SignIn", "walker", "pw").Return(&dmn.User{ID: id, Username: "walker"}, "tok", nil)

		w := post(newEngine(a), "/v1/auth/login", `{"username":"walker","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, AuthResponse{ID: id.String(), Username: "walker", Token: "tok"}, resp)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		a := &mockAuth{}
		a.On("SignIn", "walker", "nope").Return(nil, "", dmn.ErrInvalidCredentials)

		w := post(newEngine(a), "/v1/auth/login", `{"username":"walker","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthoriz(t *testing.T) {
	jwt := token.NewJwtService("test-secret", "pathfinder")
	owner := uuid.New()
	valid, err := jwt.Generate(map[string]interface{}{service.ClaimUserID: owner.String()}, time.Minute)
	require.NoError(t, err)
	noID, err := jwt.Generate(map[string]interface{}{"role": "admin"}, time.Minute)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Authoriz(jwt), func(c *gin.Context) {
		id, ok := OwnerFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"Bearer header", "Bearer " + valid, "", http.StatusOK},
		{"Lower-case scheme", "bearer " + valid, "", http.StatusOK},
		{"Query parameter", "", "?token=" + valid, http.StatusOK},
		{"No token", "", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic " + valid, "", http.StatusUnauthorized},
		{"Garbage token", "Bearer garbage", "", http.StatusUnauthorized},
		{"Token without user id", "Bearer " + noID, "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, owner.String(), w.Body.String())
			}
		})
	}
}
