package registration

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/excel"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// RegistrationController handles API requests related to registrations.
type RegistrationController struct {
	repo   RegistrationRepository
	config *config.Config
}

func NewRegistrationController(repo RegistrationRepository, cfg *config.Config) *RegistrationController {
	return &RegistrationController{repo: repo, config: cfg}
}

type CreateRegistrationRequest struct {
	EventID uint `json:"event_id" binding:"required"`
	// ParticipantID is optional; when omitted, the authenticated user is
	// registered.
	ParticipantID *uint `json:"participant_id" binding:"omitempty"`
}

// CreateRegistration godoc
// @Summary Register a participant for an event
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registration request"
// @Success 201 {object} responses.SuccessResponse{data=Registration}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /registration [post]
// @Security BearerAuth
func (rc *RegistrationController) CreateRegistration(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	event, err := rc.repo.GetEventByID(req.EventID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up event", err.Error())
		return
	}
	if event == nil {
		responses.NotFound(c, "Event")
		return
	}

	participantID := userID
	if req.ParticipantID != nil {
		participantID = *req.ParticipantID
	}

	reg := Registration{EventID: req.EventID, ParticipantID: participantID}
	if err := rc.repo.CreateRegistration(&reg); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create registration", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Registration created successfully", reg)
}

// GetAllRegistrations godoc
// @Summary List registrations
// @Tags Registrations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param event_id query int false "Filter by event"
// @Param participant_id query int false "Filter by participant"
// @Success 200 {object} responses.PaginatedResponse{data=[]Registration}
// @Router /registration [get]
// @Security BearerAuth
func (rc *RegistrationController) GetAllRegistrations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	eventID, ok := optionalUintQuery(c, "event_id")
	if !ok {
		return
	}
	participantID, ok := optionalUintQuery(c, "participant_id")
	if !ok {
		return
	}

	regs, total, err := rc.repo.GetAllRegistrations(page, pageSize, eventID, participantID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve registrations", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Registrations retrieved successfully", regs, total, page, pageSize)
}

// GetRegistrationByID godoc
// @Summary Get a registration by ID
// @Tags Registrations
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Success 200 {object} responses.SuccessResponse{data=Registration}
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registration/{registration_id} [get]
// @Security BearerAuth
func (rc *RegistrationController) GetRegistrationByID(c *gin.Context) {
	regID, err := strconv.ParseUint(c.Param("registration_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid registration ID format", nil)
		return
	}

	reg, err := rc.repo.GetRegistrationByID(uint(regID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve registration", err.Error())
		return
	}
	if reg == nil {
		responses.NotFound(c, "Registration")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Registration retrieved successfully", reg)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Tags Registrations
// @Produce json
// @Param registration_id path int true "Registration ID"
// @Success 200 {object} responses.SuccessResponse "Registration deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registration/{registration_id} [delete]
// @Security BearerAuth
func (rc *RegistrationController) DeleteRegistration(c *gin.Context) {
	regID, err := strconv.ParseUint(c.Param("registration_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid registration ID format", nil)
		return
	}

	reg, err := rc.repo.GetRegistrationByID(uint(regID))
	if err != nil || reg == nil {
		responses.NotFound(c, "Registration")
		return
	}

	if err := rc.repo.DeleteRegistration(uint(regID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete registration", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Registration deleted successfully", nil)
}

// ImportRegistrations godoc
// @Summary Bulk import registrations from a spreadsheet
// @Description Requires the registration.import permission. The sheet needs "username" and "event_id" columns; all rows are imported or none.
// @Tags Registrations
// @Accept mpfd
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 201 {object} responses.SuccessResponse "Registrations imported"
// @Failure 400 {object} responses.ErrorResponse "Malformed sheet or unresolvable row"
// @Failure 403 {object} responses.ErrorResponse "Missing import permission"
// @Router /registration/import [post]
// @Security BearerAuth
func (rc *RegistrationController) ImportRegistrations(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Spreadsheet file is required: "+err.Error(), nil)
		return
	}

	f, err := excel.OpenUpload(file)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	defer f.Close()

	rows, err := excel.Rows(f)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if len(rows) < 2 {
		responses.SendError(c, http.StatusBadRequest, "Spreadsheet has no data rows", nil)
		return
	}

	usernameCol, eventCol := -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "username":
			usernameCol = i
		case "event_id":
			eventCol = i
		}
	}
	if usernameCol < 0 || eventCol < 0 {
		responses.SendError(c, http.StatusBadRequest, `Spreadsheet must have "username" and "event_id" columns`, nil)
		return
	}

	// Resolve every row before writing anything so a bad row aborts the whole
	// import.
	regs := make([]Registration, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		if usernameCol >= len(row) || eventCol >= len(row) {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Row %d is missing required cells", rowNum), nil)
			return
		}

		username := strings.TrimSpace(row[usernameCol])
		u, err := rc.repo.GetUserByUsername(username)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to look up participant", err.Error())
			return
		}
		if u == nil {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Row %d: unknown participant %q", rowNum, username), nil)
			return
		}

		eventID, err := strconv.ParseUint(strings.TrimSpace(row[eventCol]), 10, 32)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Row %d: invalid event_id", rowNum), nil)
			return
		}
		event, err := rc.repo.GetEventByID(uint(eventID))
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to look up event", err.Error())
			return
		}
		if event == nil {
			responses.SendError(c, http.StatusBadRequest, fmt.Sprintf("Row %d: unknown event %d", rowNum, eventID), nil)
			return
		}

		regs = append(regs, Registration{EventID: uint(eventID), ParticipantID: u.ID})
	}

	if err := rc.repo.BulkCreate(regs); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to import registrations", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Registrations imported successfully", gin.H{"imported": len(regs)})
}

// ExportRegistrations godoc
// @Summary Export all registrations as a spreadsheet
// @Tags Registrations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX file"
// @Router /registration/export [get]
// @Security BearerAuth
func (rc *RegistrationController) ExportRegistrations(c *gin.Context) {
	rows, err := rc.repo.GetExportRows()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to collect registrations", err.Error())
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := excel.Export(f, "Registrations", rows); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to build spreadsheet", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="registrations.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to write spreadsheet", err.Error())
	}
}

func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name+" filter", nil)
		return nil, false
	}
	val := uint(parsed)
	return &val, true
}
