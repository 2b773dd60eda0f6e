package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/models"
	"github.com/jhonstolarski-lang/Lia-Vasconcelos-Platform/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Handler carries the auth endpoints' dependencies.
type Handler struct {
	DB *gorm.DB
	// AdminEmail is promoted to the admin role at registration.
	AdminEmail string
}

func NewHandler(db *gorm.DB, adminEmail string) *Handler {
	return &Handler{DB: db, AdminEmail: adminEmail}
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
// @Summary Create a new user
// @Description Create a new user with the provided information
// @Tags auth
// @Accept json
// @Produce json
// @Param user body registerInput true "User information"
// @Success 201 {object} map[string]interface{} "message: User created successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Email already exists"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input registerInput
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existingUser models.User
	if err := h.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "This email is already used")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError(err, "Error when checking the email existence in Register")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the email existence"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: string(passwordHash),
		Role:     models.UserRole,
	}
	if h.AdminEmail != "" && email == strings.ToLower(h.AdminEmail) {
		user.Role = models.AdminRole
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error creating the user in Register")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the user"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User created successfully in Register")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
	})
}

// Login authenticates a user and issues a JWT
// @Summary Log a user in
// @Description Authenticate with email and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginInput true "Credentials"
// @Success 200 {object} map[string]string "token: JWT"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input loginInput
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating the JWT in Login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in successfully in Login")
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated user
// @Summary Get the current user
// @Description Return the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout ends the session
// @Summary Log the user out
// @Description Sessions are stateless JWTs, so logout only acknowledges; the client discards its token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool "success: true"
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Logged out", nil)
}
