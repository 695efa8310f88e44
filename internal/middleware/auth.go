package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Evaluacion_Api/internal/models"
	"github.com/AgusMolinaCode/Evaluacion_Api/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// clave del contexto de gin con el id del usuario autenticado
const userIDKey = "userId"

type AuthHandler struct {
	users  repository.UserStore
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

func NewAuthHandler(users repository.UserStore, secret string, ttl time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// AuthMiddleware exige un token Bearer válido y guarda el id del usuario en
// el contexto
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := h.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func (h *AuthHandler) GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(h.ttl).Unix(),
	})
	return token.SignedString(h.secret)
}

// ParseToken valida la firma y la expiración y devuelve el id del usuario
func (h *AuthHandler) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token inválido")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("claims inesperados")
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", errors.New("el token no contiene userId")
	}
	return userID, nil
}

func (h *AuthHandler) Register(c *gin.Context) {
	var signup struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&signup); err != nil {
		respondBindError(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, h.logger, "auth.Register", err)
		return
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(signup.Email)),
		Password: string(hashedPassword),
		Name:     signup.Name,
	}
	if err := h.users.CreateUser(c.Request.Context(), user); err != nil {
		respondError(c, h.logger, "auth.Register", err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, "Registro exitoso", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var login struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&login); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.users.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(login.Email)))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "auth.Login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	h.respondWithToken(c, http.StatusOK, "Inicio de sesión exitoso", user)
}

// Me devuelve el usuario del token junto con un token renovado
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetUserById(c.Request.Context(), c.GetString(userIDKey))
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no encontrado"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "auth.Me", err)
		return
	}

	h.respondWithToken(c, http.StatusOK, "Sesión válida", user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, message string, user *models.User) {
	token, err := h.GenerateToken(user.ID)
	if err != nil {
		respondError(c, h.logger, "auth.GenerateToken", err)
		return
	}

	c.JSON(status, gin.H{
		"message": message,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}
