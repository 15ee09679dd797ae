package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mishti/sweetshop-api/initializers"
	"github.com/mishti/sweetshop-api/models"
	"github.com/mishti/sweetshop-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "Invalid input"
	msgUserAlreadyExists     = "User with this email already exists"
	msgInvalidCredentials    = "Invalid email or password"
	msgFailedToHashPassword  = "Failed to hash password"
	msgFailedToGenerateToken = "Failed to generate token"
	msgInternalServerError   = "Internal server error"
)

var logger = utils.NewLogger("controllers")

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"success": false, "message": message})
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
		"name":    user.Name,
		"role":    string(user.Role),
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

// Register handles user registration and returns a token right away.
func Register(ctx *gin.Context) {
	var registerData models.RegisterData
	if err := ctx.ShouldBindJSON(&registerData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.User
	result := initializers.DB.Where("email = ?", registerData.Email).Find(&existing)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("Database error during user check")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(registerData.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Password hashing error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	role := registerData.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Name:     registerData.Name,
		Email:    registerData.Email,
		Password: hashedPassword,
		Role:     role,
		Phone:    registerData.Phone,
		Address:  registerData.Address,
	}

	if result := initializers.DB.Create(&user); result.Error != nil {
		logger.Error().Err(result.Error).Msg("User creation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		logger.Error().Err(err).Msg("JWT generation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"token":   tokenString,
		"data":    user,
	})
}

// Login handles user authentication.
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := findUserByEmail(loginData.Email)
	if err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		logger.Error().Err(err).Msg("JWT generation error")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"data":    user,
	})
}
