package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jawaharlalr/dpadmin/initializers"
	"github.com/jawaharlalr/dpadmin/middlewares"
	"github.com/jawaharlalr/dpadmin/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgInvalidCredentials    = "invalid email or password"
	msgAccessDenied          = "Access Denied: you are not an operator of this dashboard"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Fullname,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User
	result := initializers.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// Login authenticates an operator. A correct password is not enough:
// the identity must also pass the admin allow-list, otherwise the
// session is denied outright.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if !middlewares.IsAllowedAdmin(jwt.MapClaims{"email": user.Email, "role": user.Role}) {
		sendErrorResponse(ctx, http.StatusForbidden, msgAccessDenied)
		return
	}

	token, err := generateJWT(user)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullname": user.Fullname,
			"role":     user.Role,
		},
	})
}

// ChangePassword lets the authenticated operator rotate their own
// password.
func ChangePassword(ctx *gin.Context) {
	var payload struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	claims := ctx.MustGet("user").(jwt.MapClaims)
	email, _ := claims["email"].(string)

	user, err := findUserByEmail(email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := comparePasswords(user.Password, payload.CurrentPassword); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	hashed, err := hashPassword(payload.NewPassword)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := initializers.DB.Model(&user).Update("password", hashed).Error; err != nil {
		log.Println("Password update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "password updated successfully"})
}

// GetProfile returns the authenticated operator's claims.
func GetProfile(ctx *gin.Context) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInternalServerError)
		return
	}
	claims := userClaims.(jwt.MapClaims)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"email": claims["email"],
		"name":  claims["name"],
		"role":  claims["role"],
	})
}
