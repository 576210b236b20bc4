package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	apperrors "cryptofolio/internal/errors"
	"cryptofolio/internal/models"
	"cryptofolio/internal/services"
	"cryptofolio/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectUserID simulates the auth middleware for handler tests.
func injectUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	if body["error"] != message {
		t.Errorf("expected error %q, got %v", message, body["error"])
	}
}

// mockUserService implements services.UserServicer with function fields.
type mockUserService struct {
	createUserFn     func(email, password string) (*models.User, error)
	getUserByEmailFn func(email string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	verifyPasswordFn func(user *models.User, password string) bool
}

var _ services.UserServicer = (*mockUserService)(nil)

func (m *mockUserService) CreateUser(email, password string) (*models.User, error) {
	return m.createUserFn(email, password)
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	return m.getUserByEmailFn(email)
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	return m.getUserByIDFn(id)
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	return m.verifyPasswordFn(user, password)
}

func newAuthRouter(svc services.UserServicer) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	r.GET("/api/me", injectUserID(1), h.Me)
	return r
}

func testUser() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		Base:     models.Base{ID: 1},
		Email:    "alice@example.com",
		Password: string(hash),
	}
}

func TestRegisterHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := &mockUserService{
			createUserFn: func(email, password string) (*models.User, error) {
				return testUser(), nil
			},
		}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/register", gin.H{
			"email":    "alice@example.com",
			"password": "password123",
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["token"] == "" || body["token"] == nil {
			t.Error("expected a token in the response")
		}
		user := body["user"].(map[string]interface{})
		if user["email"] != "alice@example.com" {
			t.Errorf("unexpected user in response: %v", user)
		}
	})

	t.Run("invalid_email", func(t *testing.T) {
		svc := &mockUserService{}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/register", gin.H{
			"email":    "not-an-email",
			"password": "password123",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("short_password", func(t *testing.T) {
		svc := &mockUserService{}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/register", gin.H{
			"email":    "alice@example.com",
			"password": "short",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		svc := &mockUserService{
			createUserFn: func(email, password string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/register", gin.H{
			"email":    "alice@example.com",
			"password": "password123",
		})
		assertErrorBody(t, rec, http.StatusConflict, "A user with this email already exists")
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return testUser(), nil
			},
			verifyPasswordFn: func(user *models.User, password string) bool {
				return password == "password123"
			},
		}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/login", gin.H{
			"email":    "alice@example.com",
			"password": "password123",
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["token"] == "" || body["token"] == nil {
			t.Error("expected a token in the response")
		}
	})

	t.Run("unknown_email_normalized_401", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/login", gin.H{
			"email":    "ghost@example.com",
			"password": "password123",
		})
		assertErrorBody(t, rec, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("wrong_password_normalized_401", func(t *testing.T) {
		svc := &mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return testUser(), nil
			},
			verifyPasswordFn: func(user *models.User, password string) bool {
				return false
			},
		}
		rec := doRequest(newAuthRouter(svc), http.MethodPost, "/api/login", gin.H{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})
		assertErrorBody(t, rec, http.StatusUnauthorized, "Invalid credentials")

		// The unknown-email and wrong-password bodies must be byte-identical.
		other := doRequest(newAuthRouter(&mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}), http.MethodPost, "/api/login", gin.H{
			"email":    "ghost@example.com",
			"password": "password123",
		})
		if rec.Body.String() != other.Body.String() {
			t.Errorf("401 bodies differ: %q vs %q", rec.Body.String(), other.Body.String())
		}
	})
}

func TestMeHandler(t *testing.T) {
	svc := &mockUserService{
		getUserByIDFn: func(id uint) (*models.User, error) {
			if id != 1 {
				t.Errorf("expected lookup for user 1, got %d", id)
			}
			return testUser(), nil
		},
	}
	rec := doRequest(newAuthRouter(svc), http.MethodGet, "/api/me", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	if body["email"] != "alice@example.com" || body["id"] != float64(1) {
		t.Errorf("unexpected body: %v", body)
	}
}
