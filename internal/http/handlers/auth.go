package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"busticket/internal/domain/models"
	"busticket/internal/http/middleware"
	"busticket/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepo{}
	user, hash, err := repo.GetCredentials(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "user lookup failed", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
		return
	}

	token, err := middleware.SignToken(user.ID, user.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "token creation failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepo{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "user check failed", err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "password hashing failed", err)
		return
	}

	id, err := repo.Create(models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     "customer",
	}, string(hash))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "user creation failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GET /api/profile
func GetProfile(c *gin.Context) {
	repo := repositories.UserRepo{}
	user, err := repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

type profileRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PUT /api/profile
func UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.UserRepo{}
	if err := repo.UpdateProfile(middleware.GetUserID(c), req.Phone, req.Address); err != nil {
		RespondError(c, http.StatusInternalServerError, "profile update failed", err)
		return
	}
	user, err := repo.GetByID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}
