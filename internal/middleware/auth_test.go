package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cryptofolio/internal/models"
)

func newAuthRouter() *gin.Engine {
	r := gin.New()
	protected := r.Group("/api", AuthMiddleware())
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint("userID"),
			"email":  c.GetString("email"),
		})
	})
	return r
}

func assertNormalized401(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse 401 body: %v", err)
	}
	if body["error"] != "Invalid credentials" {
		t.Errorf("unexpected error field %q", body["error"])
	}
	if body["message"] != "The email or password is incorrect. Please check your credentials." {
		t.Errorf("unexpected message field %q", body["message"])
	}
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()
	user := &models.User{Base: models.Base{ID: 42}, Email: "alice@example.com"}

	t.Run("valid_token", func(t *testing.T) {
		token, err := GenerateToken(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to parse body: %v", err)
		}
		if body["userID"] != float64(42) || body["email"] != "alice@example.com" {
			t.Errorf("unexpected identity in context: %v", body)
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		r.ServeHTTP(rec, req)
		assertNormalized401(t, rec)
	})

	t.Run("malformed_header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Token abc123")
		r.ServeHTTP(rec, req)
		assertNormalized401(t, rec)
	})

	t.Run("garbage_token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(rec, req)
		assertNormalized401(t, rec)
	})

	t.Run("expired_token", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: user.ID,
			Email:  user.Email,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getJWTKey())
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		r.ServeHTTP(rec, req)
		assertNormalized401(t, rec)
	})

	t.Run("wrong_signing_key", func(t *testing.T) {
		claims := &JWTClaims{UserID: user.ID, Email: user.Email}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		r.ServeHTTP(rec, req)
		assertNormalized401(t, rec)
	})
}
