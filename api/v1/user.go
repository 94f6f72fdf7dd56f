package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/repositories"
	"github.com/atolyedigital/agency-api/services"
)

// UserController exposes dashboard account management. All routes are gated
// behind the admin role.
type UserController struct {
	service *services.UserService
}

// NewUserController creates a new user controller instance
func NewUserController(store repositories.Store) *UserController {
	return &UserController{service: services.NewUserService(store)}
}

// ListAll returns every account
func (ctrl *UserController) ListAll(c *gin.Context) {
	users, err := ctrl.service.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create stores a new account
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctrl.service.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update merges a patch over an existing account
func (ctrl *UserController) Update(c *gin.Context) {
	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctrl.service.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes an account. Self-deletion is rejected.
func (ctrl *UserController) Delete(c *gin.Context) {
	callerID, _ := c.Get("userId")
	callerIDStr, _ := callerID.(string)

	if err := ctrl.service.Delete(c.Param("id"), callerIDStr); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}
