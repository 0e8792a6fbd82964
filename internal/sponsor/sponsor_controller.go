package sponsor

import (
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/uploads"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
)

// SponsorController handles API requests related to sponsors.
type SponsorController struct {
	repo   SponsorRepository
	config *config.Config
}

func NewSponsorController(repo SponsorRepository, cfg *config.Config) *SponsorController {
	return &SponsorController{repo: repo, config: cfg}
}

type CreateSponsorRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=256" example:"Acme Corp"`
	Tagline     string `json:"tagline" binding:"omitempty,max=512"`
	Partnership string `json:"partnership" binding:"omitempty,max=256" example:"Title Sponsor"`
}

type UpdateSponsorRequest struct {
	Name        string  `json:"name" binding:"omitempty,min=2,max=256"`
	Tagline     *string `json:"tagline" binding:"omitempty,max=512"`
	Partnership *string `json:"partnership" binding:"omitempty,max=256"`
}

// CreateSponsor godoc
// @Summary Create a sponsor
// @Tags Sponsors
// @Accept json
// @Produce json
// @Param sponsor body CreateSponsorRequest true "Sponsor creation request"
// @Success 201 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /sponsor [post]
// @Security BearerAuth
func (sc *SponsorController) CreateSponsor(c *gin.Context) {
	var req CreateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	sponsor := Sponsor{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Partnership: req.Partnership,
	}
	if err := sc.repo.CreateSponsor(&sponsor); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Sponsor created successfully", sponsor)
}

// GetAllSponsors godoc
// @Summary List sponsors
// @Tags Sponsors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Sponsor}
// @Router /sponsor [get]
func (sc *SponsorController) GetAllSponsors(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	sponsors, total, err := sc.repo.GetAllSponsors(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sponsors", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Sponsors retrieved successfully", sponsors, total, page, pageSize)
}

// GetSponsorByID godoc
// @Summary Get a sponsor by ID
// @Tags Sponsors
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Success 200 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsor/{sponsor_id} [get]
func (sc *SponsorController) GetSponsorByID(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve sponsor", err.Error())
		return
	}
	if sponsor == nil {
		responses.NotFound(c, "Sponsor")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor retrieved successfully", sponsor)
}

// UpdateSponsor godoc
// @Summary Update a sponsor
// @Tags Sponsors
// @Accept json
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Param sponsor body UpdateSponsorRequest true "Sponsor update request"
// @Success 200 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsor/{sponsor_id} [put]
// @Security BearerAuth
func (sc *SponsorController) UpdateSponsor(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	var req UpdateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil || sponsor == nil {
		responses.NotFound(c, "Sponsor")
		return
	}

	if req.Name != "" {
		sponsor.Name = req.Name
	}
	if req.Tagline != nil {
		sponsor.Tagline = *req.Tagline
	}
	if req.Partnership != nil {
		sponsor.Partnership = *req.Partnership
	}

	if err := sc.repo.UpdateSponsor(sponsor); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor updated successfully", sponsor)
}

// UploadSponsorLogo godoc
// @Summary Upload a sponsor logo
// @Tags Sponsors
// @Accept mpfd
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Param image formData file true "Logo image"
// @Success 200 {object} responses.SuccessResponse{data=Sponsor}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsor/{sponsor_id}/logo [post]
// @Security BearerAuth
func (sc *SponsorController) UploadSponsorLogo(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil || sponsor == nil {
		responses.NotFound(c, "Sponsor")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Image file is required: "+err.Error(), nil)
		return
	}

	relPath, err := uploads.SaveImage(c, file, sc.config.App.UploadDir, "images/sponsors")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	sponsor.Logo = relPath
	if err := sc.repo.UpdateSponsor(sponsor); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Logo uploaded successfully", sponsor)
}

// DeleteSponsor godoc
// @Summary Delete a sponsor
// @Tags Sponsors
// @Produce json
// @Param sponsor_id path int true "Sponsor ID"
// @Success 200 {object} responses.SuccessResponse "Sponsor deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Sponsor not found"
// @Router /sponsor/{sponsor_id} [delete]
// @Security BearerAuth
func (sc *SponsorController) DeleteSponsor(c *gin.Context) {
	sponsorID, err := strconv.ParseUint(c.Param("sponsor_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid sponsor ID format", nil)
		return
	}

	sponsor, err := sc.repo.GetSponsorByID(uint(sponsorID))
	if err != nil || sponsor == nil {
		responses.NotFound(c, "Sponsor")
		return
	}

	if err := sc.repo.DeleteSponsor(uint(sponsorID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete sponsor", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Sponsor deleted successfully", nil)
}
