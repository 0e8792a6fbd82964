package brochure

import (
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/uploads"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
)

type BrochureController struct {
	repo   BrochureRepository
	config *config.Config
}

func NewBrochureController(repo BrochureRepository, cfg *config.Config) *BrochureController {
	return &BrochureController{repo: repo, config: cfg}
}

type CreateBrochureRequest struct {
	Name string `json:"name" binding:"required,min=2,max=256" example:"Schedule 2026"`
}

type UpdateBrochureRequest struct {
	Name string `json:"name" binding:"omitempty,min=2,max=256"`
}

// CreateBrochure godoc
// @Summary Create a brochure
// @Tags Brochures
// @Accept json
// @Produce json
// @Param brochure body CreateBrochureRequest true "Brochure creation request"
// @Success 201 {object} responses.SuccessResponse{data=Brochure}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /brochure [post]
// @Security BearerAuth
func (bc *BrochureController) CreateBrochure(c *gin.Context) {
	var req CreateBrochureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	brochure := Brochure{Name: req.Name}
	if err := bc.repo.CreateBrochure(&brochure); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create brochure", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Brochure created successfully", brochure)
}

// GetAllBrochures godoc
// @Summary List brochures
// @Tags Brochures
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Brochure}
// @Router /brochure [get]
func (bc *BrochureController) GetAllBrochures(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	brochures, total, err := bc.repo.GetAllBrochures(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve brochures", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Brochures retrieved successfully", brochures, total, page, pageSize)
}

// GetBrochureByID godoc
// @Summary Get a brochure by ID
// @Tags Brochures
// @Produce json
// @Param brochure_id path int true "Brochure ID"
// @Success 200 {object} responses.SuccessResponse{data=Brochure}
// @Failure 404 {object} responses.ErrorResponse "Brochure not found"
// @Router /brochure/{brochure_id} [get]
func (bc *BrochureController) GetBrochureByID(c *gin.Context) {
	brochureID, err := strconv.ParseUint(c.Param("brochure_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid brochure ID format", nil)
		return
	}

	brochure, err := bc.repo.GetBrochureByID(uint(brochureID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve brochure", err.Error())
		return
	}
	if brochure == nil {
		responses.NotFound(c, "Brochure")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Brochure retrieved successfully", brochure)
}

// UpdateBrochure godoc
// @Summary Update a brochure
// @Tags Brochures
// @Accept json
// @Produce json
// @Param brochure_id path int true "Brochure ID"
// @Param brochure body UpdateBrochureRequest true "Brochure update request"
// @Success 200 {object} responses.SuccessResponse{data=Brochure}
// @Failure 404 {object} responses.ErrorResponse "Brochure not found"
// @Router /brochure/{brochure_id} [put]
// @Security BearerAuth
func (bc *BrochureController) UpdateBrochure(c *gin.Context) {
	brochureID, err := strconv.ParseUint(c.Param("brochure_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid brochure ID format", nil)
		return
	}

	var req UpdateBrochureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	brochure, err := bc.repo.GetBrochureByID(uint(brochureID))
	if err != nil || brochure == nil {
		responses.NotFound(c, "Brochure")
		return
	}

	if req.Name != "" {
		brochure.Name = req.Name
	}

	if err := bc.repo.UpdateBrochure(brochure); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update brochure", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Brochure updated successfully", brochure)
}

// UploadBrochurePDF godoc
// @Summary Upload the brochure document
// @Tags Brochures
// @Accept mpfd
// @Produce json
// @Param brochure_id path int true "Brochure ID"
// @Param pdf formData file true "Brochure PDF"
// @Success 200 {object} responses.SuccessResponse{data=Brochure}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Brochure not found"
// @Router /brochure/{brochure_id}/pdf [post]
// @Security BearerAuth
func (bc *BrochureController) UploadBrochurePDF(c *gin.Context) {
	brochureID, err := strconv.ParseUint(c.Param("brochure_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid brochure ID format", nil)
		return
	}

	brochure, err := bc.repo.GetBrochureByID(uint(brochureID))
	if err != nil || brochure == nil {
		responses.NotFound(c, "Brochure")
		return
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "PDF file is required: "+err.Error(), nil)
		return
	}

	relPath, err := uploads.SavePDF(c, file, bc.config.App.UploadDir, "pdf/brochure")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	brochure.BrochurePDF = relPath
	if err := bc.repo.UpdateBrochure(brochure); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update brochure", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Brochure PDF uploaded successfully", brochure)
}

// DeleteBrochure godoc
// @Summary Delete a brochure
// @Tags Brochures
// @Produce json
// @Param brochure_id path int true "Brochure ID"
// @Success 200 {object} responses.SuccessResponse "Brochure deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Brochure not found"
// @Router /brochure/{brochure_id} [delete]
// @Security BearerAuth
func (bc *BrochureController) DeleteBrochure(c *gin.Context) {
	brochureID, err := strconv.ParseUint(c.Param("brochure_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid brochure ID format", nil)
		return
	}

	brochure, err := bc.repo.GetBrochureByID(uint(brochureID))
	if err != nil || brochure == nil {
		responses.NotFound(c, "Brochure")
		return
	}

	if err := bc.repo.DeleteBrochure(uint(brochureID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete brochure", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Brochure deleted successfully", nil)
}
