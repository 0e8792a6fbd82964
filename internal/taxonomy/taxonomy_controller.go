package taxonomy

import (
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/uploads"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
)

// TaxonomyController handles API requests for event categories and types.
type TaxonomyController struct {
	repo   TaxonomyRepository
	config *config.Config
}

func NewTaxonomyController(repo TaxonomyRepository, cfg *config.Config) *TaxonomyController {
	return &TaxonomyController{repo: repo, config: cfg}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=256" example:"Cultural"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"omitempty,min=2,max=256" example:"Cultural"`
}

type CreateTypeRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=256" example:"Street Play"`
	EventCategoryID *uint  `json:"event_category_id" binding:"omitempty"`
}

type UpdateTypeRequest struct {
	Name            string `json:"name" binding:"omitempty,min=2,max=256" example:"Street Play"`
	EventCategoryID *uint  `json:"event_category_id" binding:"omitempty"`
}

// CreateCategory godoc
// @Summary Create an event category
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category creation request"
// @Success 201 {object} responses.SuccessResponse{data=EventCategory}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /category [post]
// @Security BearerAuth
func (tc *TaxonomyController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	category := EventCategory{Name: req.Name}
	if err := tc.repo.CreateCategory(&category); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create category", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// GetAllCategories godoc
// @Summary List event categories
// @Tags Taxonomy
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]EventCategory}
// @Router /category [get]
func (tc *TaxonomyController) GetAllCategories(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	categories, total, err := tc.repo.GetAllCategories(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve categories", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Categories retrieved successfully", categories, total, page, pageSize)
}

// GetCategoryByID godoc
// @Summary Get an event category by ID
// @Tags Taxonomy
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} responses.SuccessResponse{data=EventCategory}
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Router /category/{category_id} [get]
func (tc *TaxonomyController) GetCategoryByID(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	category, err := tc.repo.GetCategoryByID(uint(categoryID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve category", err.Error())
		return
	}
	if category == nil {
		responses.NotFound(c, "Category")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Category retrieved successfully", category)
}

// UpdateCategory godoc
// @Summary Update an event category
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param category_id path int true "Category ID"
// @Param category body UpdateCategoryRequest true "Category update request"
// @Success 200 {object} responses.SuccessResponse{data=EventCategory}
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Router /category/{category_id} [put]
// @Security BearerAuth
func (tc *TaxonomyController) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	category, err := tc.repo.GetCategoryByID(uint(categoryID))
	if err != nil || category == nil {
		responses.NotFound(c, "Category")
		return
	}

	if req.Name != "" {
		category.Name = req.Name
	}

	if err := tc.repo.UpdateCategory(category); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update category", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// UploadCategoryCover godoc
// @Summary Upload a category cover image
// @Tags Taxonomy
// @Accept mpfd
// @Produce json
// @Param category_id path int true "Category ID"
// @Param image formData file true "Cover image"
// @Success 200 {object} responses.SuccessResponse{data=EventCategory}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Router /category/{category_id}/cover [post]
// @Security BearerAuth
func (tc *TaxonomyController) UploadCategoryCover(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	category, err := tc.repo.GetCategoryByID(uint(categoryID))
	if err != nil || category == nil {
		responses.NotFound(c, "Category")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Image file is required: "+err.Error(), nil)
		return
	}

	relPath, err := uploads.SaveImage(c, file, tc.config.App.UploadDir, "images/eventCategory")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	category.CoverImage = relPath
	if err := tc.repo.UpdateCategory(category); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update category", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Cover image uploaded successfully", category)
}

// DeleteCategory godoc
// @Summary Delete an event category
// @Description Deleting a category also deletes its event types; affected events lose their type
// @Tags Taxonomy
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} responses.SuccessResponse "Category deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Router /category/{category_id} [delete]
// @Security BearerAuth
func (tc *TaxonomyController) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid category ID format", nil)
		return
	}

	category, err := tc.repo.GetCategoryByID(uint(categoryID))
	if err != nil || category == nil {
		responses.NotFound(c, "Category")
		return
	}

	if err := tc.repo.DeleteCategory(uint(categoryID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete category", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}

// CreateType godoc
// @Summary Create an event type
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param type body CreateTypeRequest true "Event type creation request"
// @Success 201 {object} responses.SuccessResponse{data=EventType}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Category not found"
// @Router /eventtype [post]
// @Security BearerAuth
func (tc *TaxonomyController) CreateType(c *gin.Context) {
	var req CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.EventCategoryID != nil {
		category, err := tc.repo.GetCategoryByID(*req.EventCategoryID)
		if err != nil || category == nil {
			responses.NotFound(c, "Category")
			return
		}
	}

	eventType := EventType{Name: req.Name, EventCategoryID: req.EventCategoryID}
	if err := tc.repo.CreateType(&eventType); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create event type", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Event type created successfully", eventType)
}

// GetAllTypes godoc
// @Summary List event types
// @Tags Taxonomy
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param category_id query int false "Filter by category"
// @Success 200 {object} responses.PaginatedResponse{data=[]EventType}
// @Router /eventtype [get]
func (tc *TaxonomyController) GetAllTypes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid category_id filter", nil)
			return
		}
		val := uint(parsed)
		categoryID = &val
	}

	types, total, err := tc.repo.GetAllTypes(page, pageSize, categoryID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve event types", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Event types retrieved successfully", types, total, page, pageSize)
}

// GetTypeByID godoc
// @Summary Get an event type by ID
// @Tags Taxonomy
// @Produce json
// @Param type_id path int true "Event type ID"
// @Success 200 {object} responses.SuccessResponse{data=EventType}
// @Failure 404 {object} responses.ErrorResponse "Event type not found"
// @Router /eventtype/{type_id} [get]
func (tc *TaxonomyController) GetTypeByID(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("type_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event type ID format", nil)
		return
	}

	eventType, err := tc.repo.GetTypeByID(uint(typeID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve event type", err.Error())
		return
	}
	if eventType == nil {
		responses.NotFound(c, "Event type")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event type retrieved successfully", eventType)
}

// UpdateType godoc
// @Summary Update an event type
// @Tags Taxonomy
// @Accept json
// @Produce json
// @Param type_id path int true "Event type ID"
// @Param type body UpdateTypeRequest true "Event type update request"
// @Success 200 {object} responses.SuccessResponse{data=EventType}
// @Failure 404 {object} responses.ErrorResponse "Event type not found"
// @Router /eventtype/{type_id} [put]
// @Security BearerAuth
func (tc *TaxonomyController) UpdateType(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("type_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event type ID format", nil)
		return
	}

	var req UpdateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	eventType, err := tc.repo.GetTypeByID(uint(typeID))
	if err != nil || eventType == nil {
		responses.NotFound(c, "Event type")
		return
	}

	if req.Name != "" {
		eventType.Name = req.Name
	}
	if req.EventCategoryID != nil {
		category, err := tc.repo.GetCategoryByID(*req.EventCategoryID)
		if err != nil || category == nil {
			responses.NotFound(c, "Category")
			return
		}
		eventType.EventCategoryID = req.EventCategoryID
	}

	if err := tc.repo.UpdateType(eventType); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update event type", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event type updated successfully", eventType)
}

// UploadTypeCover godoc
// @Summary Upload an event type cover image
// @Tags Taxonomy
// @Accept mpfd
// @Produce json
// @Param type_id path int true "Event type ID"
// @Param image formData file true "Cover image"
// @Success 200 {object} responses.SuccessResponse{data=EventType}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Event type not found"
// @Router /eventtype/{type_id}/cover [post]
// @Security BearerAuth
func (tc *TaxonomyController) UploadTypeCover(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("type_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event type ID format", nil)
		return
	}

	eventType, err := tc.repo.GetTypeByID(uint(typeID))
	if err != nil || eventType == nil {
		responses.NotFound(c, "Event type")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Image file is required: "+err.Error(), nil)
		return
	}

	relPath, err := uploads.SaveImage(c, file, tc.config.App.UploadDir, "images/eventType")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	eventType.CoverImage = relPath
	if err := tc.repo.UpdateType(eventType); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update event type", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Cover image uploaded successfully", eventType)
}

// DeleteType godoc
// @Summary Delete an event type
// @Description Events referencing the type keep existing with the reference cleared
// @Tags Taxonomy
// @Produce json
// @Param type_id path int true "Event type ID"
// @Success 200 {object} responses.SuccessResponse "Event type deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Event type not found"
// @Router /eventtype/{type_id} [delete]
// @Security BearerAuth
func (tc *TaxonomyController) DeleteType(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Param("type_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event type ID format", nil)
		return
	}

	eventType, err := tc.repo.GetTypeByID(uint(typeID))
	if err != nil || eventType == nil {
		responses.NotFound(c, "Event type")
		return
	}

	if err := tc.repo.DeleteType(uint(typeID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete event type", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event type deleted successfully", nil)
}
