package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/config"
	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
)

type AuthHandler struct {
	secret string
	ttl    time.Duration
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{secret: cfg.JWTSecret, ttl: cfg.TokenTTL}
}

func (h *AuthHandler) signToken(username string, id uint, role string) (string, error) {
	now := time.Now()
	claims := middlewares.Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
}

// POST /auth/token — exchange form credentials for a bearer token.
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Unauthorized("Anonymous", "Failed authorization")
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return errs.Unauthorized(username, "Failed authorization")
	}

	token, err := h.signToken(user.Username, user.ID, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
