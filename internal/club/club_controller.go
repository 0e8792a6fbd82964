package club

import (
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ClubController handles API requests related to clubs.
type ClubController struct {
	repo   ClubRepository
	config *config.Config
}

func NewClubController(repo ClubRepository, cfg *config.Config) *ClubController {
	return &ClubController{repo: repo, config: cfg}
}

type CreateClubRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64" example:"Dramatics Society"`
}

type UpdateClubRequest struct {
	Name string `json:"name" binding:"omitempty,min=2,max=64" example:"Dramatics Society"`
}

// CreateClub godoc
// @Summary Create a new club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club creation request"
// @Success 201 {object} responses.SuccessResponse{data=Club}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /club [post]
// @Security BearerAuth
func (cc *ClubController) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	club := Club{Name: req.Name}
	if err := cc.repo.CreateClub(&club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", club)
}

// GetAllClubs godoc
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param search query string false "Search term for name"
// @Success 200 {object} responses.PaginatedResponse{data=[]Club}
// @Router /club [get]
func (cc *ClubController) GetAllClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	searchTerm := c.Query("search")

	clubs, total, err := cc.repo.GetAllClubs(page, pageSize, searchTerm)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve clubs", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Clubs retrieved successfully", clubs, total, page, pageSize)
}

// GetClubByID godoc
// @Summary Get a club by ID
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /club/{club_id} [get]
func (cc *ClubController) GetClubByID(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve club", err.Error())
		return
	}
	if club == nil {
		responses.NotFound(c, "Club")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path int true "Club ID"
// @Param club body UpdateClubRequest true "Club update request"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /club/{club_id} [put]
// @Security BearerAuth
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil || club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if req.Name != "" {
		club.Name = req.Name
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary Delete a club
// @Description Deleting a club detaches it from its events rather than deleting them
// @Tags Clubs
// @Produce json
// @Param club_id path int true "Club ID"
// @Success 200 {object} responses.SuccessResponse "Club deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Club not found"
// @Router /club/{club_id} [delete]
// @Security BearerAuth
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid club ID format", nil)
		return
	}

	club, err := cc.repo.GetClubByID(uint(clubID))
	if err != nil || club == nil {
		responses.NotFound(c, "Club")
		return
	}

	if err := cc.repo.DeleteClub(uint(clubID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete club", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}
