package handlers

import (
	"net/http"

	"project-management-api/internal/auth"
	"project-management-api/internal/authz"
	"project-management-api/internal/middleware"
	"project-management-api/internal/models"
	"project-management-api/internal/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// TokenRequest represents the credential-exchange payload
type TokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Token handles POST /api/token
// Exchanges email + password for an access/refresh token pair.
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active account found with the given credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active account found with the given credentials"})
		return
	}

	access, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Access: access, Refresh: refresh})
}

// RefreshRequest represents the refresh payload
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshToken handles POST /api/token/refresh
// Exchanges a refresh token for a new access token.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := auth.ValidateRefreshToken(req.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	access, err := auth.GenerateToken(claims.UserID, claims.Username, claims.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// CreateUserRequest represents the payload for creating an account
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

// CreateUser handles POST /api/users
// Admins create accounts; the role is fixed here and never changes.
func (h *Handler) CreateUser(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ManageUserRoles...) {
		response.Unauthorized(c)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Role.Valid() {
		response.Error(c, http.StatusBadRequest, "Invalid role.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		Email:        req.Email,
		Username:     req.Username,
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := h.db.Create(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	response.Created(c, "User created successfully.")
}

// UserListItem is the safe projection of a user for listings
type UserListItem struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

// GetAllUsers handles GET /api/users
// Admins and managers browse accounts when picking assignees.
func (h *Handler) GetAllUsers(c *gin.Context) {
	if !authz.Allow(middleware.CallerRole(c), authz.ListUserRoles...) {
		response.Unauthorized(c)
		return
	}

	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItem{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role})
	}

	response.OK(c, items, "Showing all the users.")
}
