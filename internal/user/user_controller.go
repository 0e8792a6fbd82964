package user

import (
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
)

// UserController handles API requests for user administration and the
// read-only participant views.
type UserController struct {
	repo   UserRepository
	config *config.Config
}

func NewUserController(repo UserRepository, cfg *config.Config) *UserController {
	return &UserController{repo: repo, config: cfg}
}

type GrantPermissionRequest struct {
	Code        string `json:"code" binding:"required,min=3,max=100" example:"registration.import"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// GetAllUsers godoc
// @Summary List users
// @Description Admin can list all user accounts
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param search query string false "Search term for username or email"
// @Success 200 {object} responses.PaginatedResponse{data=[]User}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /user [get]
// @Security BearerAuth
func (uc *UserController) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	searchTerm := c.Query("search")

	users, total, err := uc.repo.GetAllUsers(page, pageSize, searchTerm)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve users", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Users retrieved successfully", users, total, page, pageSize)
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /user/{user_id} [get]
// @Security BearerAuth
func (uc *UserController) GetUserByID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	u, err := uc.repo.GetUserByID(uint(userID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user", err.Error())
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", u)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Admin can delete a user; the user's registrations are removed as well
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse "User deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /user/{user_id} [delete]
// @Security BearerAuth
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	u, err := uc.repo.GetUserByID(uint(userID))
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.DeleteUser(uint(userID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete user", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

// GrantPermission godoc
// @Summary Grant a permission to a user
// @Description Admin can grant an explicit capability (e.g. registration.import) to a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param permission body GrantPermissionRequest true "Permission grant request"
// @Success 200 {object} responses.SuccessResponse "Permission granted"
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /user/{user_id}/permissions [post]
// @Security BearerAuth
func (uc *UserController) GrantPermission(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	var req GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := uc.repo.GetUserByID(uint(userID))
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.GrantPermission(uint(userID), req.Code, req.Description); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to grant permission", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Permission granted successfully", nil)
}

// RevokePermission godoc
// @Summary Revoke a permission from a user
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Param code path string true "Permission code"
// @Success 200 {object} responses.SuccessResponse "Permission revoked"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Router /user/{user_id}/permissions/{code} [delete]
// @Security BearerAuth
func (uc *UserController) RevokePermission(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	u, err := uc.repo.GetUserByID(uint(userID))
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}

	if err := uc.repo.RevokePermission(uint(userID), c.Param("code")); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to revoke permission", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Permission revoked successfully", nil)
}

// GetParticipants godoc
// @Summary List participants
// @Description List users that have registered for at least one event
// @Tags Participants
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]User}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /participant [get]
// @Security BearerAuth
func (uc *UserController) GetParticipants(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	participants, total, err := uc.repo.GetParticipants(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve participants", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Participants retrieved successfully", participants, total, page, pageSize)
}

// GetParticipantByID godoc
// @Summary Get a participant with their registrations
// @Tags Participants
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=ParticipantResponse}
// @Failure 404 {object} responses.ErrorResponse "Participant not found"
// @Router /participant/{user_id} [get]
// @Security BearerAuth
func (uc *UserController) GetParticipantByID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid user ID format", nil)
		return
	}

	u, err := uc.repo.GetUserByID(uint(userID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve participant", err.Error())
		return
	}
	if u == nil {
		responses.NotFound(c, "Participant")
		return
	}

	regs, err := uc.repo.GetParticipantRegistrations(uint(userID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve registrations", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Participant retrieved successfully", ParticipantResponse{
		User:          *u,
		Registrations: regs,
	})
}
