package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "secreto-de-prueba"

func newAuthRouter(users *MockUserStore) (*gin.Engine, *AuthHandler) {
	handler := NewAuthHandler(users, testSecret, time.Hour, zap.NewNop())
	router := gin.New()
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.GET("/auth/me", handler.AuthMiddleware(), handler.Me)
	return router, handler
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

func TestRegister(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "ana@example.com" && u.ID != "" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secreta123")) == nil
	})).Return(nil)

	router, handler := newAuthRouter(users)
	w := doRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email": "Ana@Example.com", "password": "secreta123", "name": "Ana",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp authResponse
	decode(t, w, &resp)
	assert.Equal(t, "ana@example.com", resp.User.Email)

	userID, err := handler.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserStore)
	users.On("CreateUser", mock.Anything, mock.Anything).Return(models.ErrDuplicateEmail)

	router, _ := newAuthRouter(users)
	w := doRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email": "ana@example.com", "password": "secreta123", "name": "Ana",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	router, _ := newAuthRouter(new(MockUserStore))
	w := doRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"email": "no-es-email", "password": "123", "name": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.User{ID: "u1", Email: "ana@example.com", Password: string(hash), Name: "Ana"}

	users := new(MockUserStore)
	users.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
	users.On("GetUserByEmail", mock.Anything, "nadie@example.com").Return(nil, models.ErrNotFound)

	router, handler := newAuthRouter(users)

	t.Run("credenciales correctas", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/auth/login", gin.H{"email": "ana@example.com", "password": "secreta123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp authResponse
		decode(t, w, &resp)
		userID, err := handler.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/auth/login", gin.H{"email": "ana@example.com", "password": "otra"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/auth/login", gin.H{"email": "nadie@example.com", "password": "secreta123"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserById", mock.Anything, "u1").Return(&models.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}, nil)

	router, handler := newAuthRouter(users)
	valid, err := handler.GenerateToken("u1")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sin token", "", http.StatusUnauthorized},
		{"token válido", "Bearer " + valid, http.StatusOK},
		{"token vencido", "Bearer " + expired, http.StatusUnauthorized},
		{"firma ajena", "Bearer " + otherSecret, http.StatusUnauthorized},
		{"basura", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
