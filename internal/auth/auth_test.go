package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Sridevi2108/Auracare/internal/models"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{Email: "amy@example.com", Role: "Admin"}

	t.Run("Round Trips Claims", func(t *testing.T) {
		token, err := issuer.Generate(user)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := issuer.verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "amy@example.com", claims["email"])
		assert.Equal(t, "Admin", claims["role"])
	})

	t.Run("Rejects Tokens Signed With Another Secret", func(t *testing.T) {
		other := NewTokenIssuer("other-secret", time.Hour)
		token, err := other.Generate(user)
		assert.NoError(t, err)

		_, err = issuer.verify(token)
		assert.Error(t, err)
	})

	t.Run("Rejects Expired Tokens", func(t *testing.T) {
		// ttl <= 0 falls back to the default, so use the smallest window and
		// an issuer whose clock has passed it.
		short := NewTokenIssuer("test-secret", time.Nanosecond)
		token, err := short.Generate(user)
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = short.verify(token)
		assert.Error(t, err)
	})
}

func TestMiddlewareHeaderValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := NewTokenIssuer("test-secret", time.Hour)

	run := func(header string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/users", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		Middleware(issuer, nil)(c)
		return w
	}

	t.Run("Missing Header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run("").Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run("Token abc").Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run("Bearer not-a-jwt").Code)
	})
}

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(user interface{}) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/users", nil)
		if user != nil {
			c.Set("user", user)
		}
		AdminOnly()(c)
		return w
	}

	t.Run("Admin Passes", func(t *testing.T) {
		w := run(&models.User{Role: "Admin"})
		assert.NotEqual(t, http.StatusForbidden, w.Code)
		assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Role Check Is Case Insensitive", func(t *testing.T) {
		w := run(&models.User{Role: "admin"})
		assert.NotEqual(t, http.StatusForbidden, w.Code)
	})

	t.Run("Non Admin Is Forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, run(&models.User{Role: "User"}).Code)
	})

	t.Run("Missing User Is Unauthorized", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, run(nil).Code)
	})
}
