// internal/api/handlers/user_handler.go
package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swastik-transport-api-server/internal/auth"
	"swastik-transport-api-server/internal/models"
	"swastik-transport-api-server/internal/repository"
)

type UserHandler struct {
	Store     UserStore
	JWTSecret []byte
	JWTExpiry time.Duration
	// AdminCode gates the admin registration form.
	AdminCode string
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterAdminRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Department string `json:"department" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	AdminCode  string `json:"adminCode" binding:"required"`
}

type RegisterSocialRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Provider   string `json:"provider"`
	ProfilePic string `json:"profilePic"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func avatarURL(name, background string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff&size=200",
		url.QueryEscape(name), background)
}

func (h *UserHandler) issueToken(u *models.User) (string, error) {
	return auth.GenerateJWT(h.JWTSecret, u.Email, u.Name, u.Role, h.JWTExpiry)
}

func (h *UserHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		Password:          hashedPassword,
		Role:              "customer",
		ProfilePictureURL: avatarURL(req.Name, "1e3c72"),
	}

	if err := h.Store.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		log.Printf("Error registering customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *UserHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.AdminCode != h.AdminCode {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid admin code"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := &models.User{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Department:        req.Department,
		Password:          hashedPassword,
		Role:              "admin",
		ProfilePictureURL: avatarURL(req.Name, "dc3545"),
	}

	if err := h.Store.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		log.Printf("Error registering admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// RegisterSocial creates or fetches an account for a social sign-in. No
// credential is presented, so new accounts get a random password hash
// and can only ever log in through this endpoint.
func (h *UserHandler) RegisterSocial(c *gin.Context) {
	var req RegisterSocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.FindByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		hashedPassword, hashErr := auth.HashPassword(uuid.New().String())
		if hashErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		profilePic := req.ProfilePic
		if profilePic == "" {
			profilePic = avatarURL(req.Name, "1e3c72")
		}

		user = &models.User{
			Name:              req.Name,
			Email:             req.Email,
			Password:          hashedPassword,
			Role:              "customer",
			ProfilePictureURL: profilePic,
		}
		err = h.Store.Insert(c.Request.Context(), user)
	}
	if err != nil {
		log.Printf("Error registering social user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("Error fetching user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
