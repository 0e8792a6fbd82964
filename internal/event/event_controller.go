package event

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/uploads"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EventController handles API requests related to events.
type EventController struct {
	repo   EventRepository
	config *config.Config
}

func NewEventController(repo EventRepository, cfg *config.Config) *EventController {
	return &EventController{repo: repo, config: cfg}
}

type CreateEventRequest struct {
	Name             string    `json:"name" binding:"required,min=2,max=256" example:"Battle of Bands"`
	Locations        string    `json:"locations" binding:"required,max=256" example:"Open Air Theatre"`
	DateTime         time.Time `json:"date_time" binding:"required" example:"2026-03-14T18:00:00Z"`
	Prize            string    `json:"prize" binding:"omitempty"`
	MinTeam          int       `json:"min_team" binding:"omitempty,min=0"`
	MaxTeam          int       `json:"max_team" binding:"omitempty,min=0"`
	EventTypeID      *uint     `json:"event_type_id" binding:"omitempty"`
	ClubID           *uint     `json:"club_id" binding:"omitempty"`
	Details          string    `json:"details" binding:"omitempty"`
	ShortDescription string    `json:"short_description" binding:"omitempty"`
	RuleList         string    `json:"rule_list" binding:"omitempty"`
	CoordinatorIDs   []uint    `json:"coordinator_ids" binding:"omitempty"`
}

type UpdateEventRequest struct {
	Name             string     `json:"name" binding:"omitempty,min=2,max=256"`
	Locations        string     `json:"locations" binding:"omitempty,max=256"`
	DateTime         *time.Time `json:"date_time" binding:"omitempty"`
	Prize            *string    `json:"prize" binding:"omitempty"`
	MinTeam          *int       `json:"min_team" binding:"omitempty,min=0"`
	MaxTeam          *int       `json:"max_team" binding:"omitempty,min=0"`
	EventTypeID      *uint      `json:"event_type_id" binding:"omitempty"`
	ClubID           *uint      `json:"club_id" binding:"omitempty"`
	Details          *string    `json:"details" binding:"omitempty"`
	ShortDescription *string    `json:"short_description" binding:"omitempty"`
	RuleList         *string    `json:"rule_list" binding:"omitempty"`
	CoordinatorIDs   *[]uint    `json:"coordinator_ids" binding:"omitempty"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event creation request"
// @Success 201 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse "Validation error (e.g. negative team size)"
// @Failure 404 {object} responses.ErrorResponse "Referenced coordinator not found"
// @Router /event [post]
// @Security BearerAuth
func (ec *EventController) CreateEvent(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	coordinators, err := ec.repo.GetCoordinators(req.CoordinatorIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Coordinator")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to resolve coordinators", err.Error())
		return
	}

	event := Event{
		Name:             req.Name,
		Locations:        req.Locations,
		DateTime:         req.DateTime,
		Prize:            req.Prize,
		MinTeam:          req.MinTeam,
		MaxTeam:          req.MaxTeam,
		EventTypeID:      req.EventTypeID,
		ClubID:           req.ClubID,
		Details:          req.Details,
		ShortDescription: req.ShortDescription,
		RuleList:         req.RuleList,
		Coordinators:     coordinators,
	}

	if err := ec.repo.CreateEvent(&event, actorID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create event", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", event)
}

// GetAllEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param search query string false "Search term for name or description"
// @Param event_type_id query int false "Filter by event type"
// @Param club_id query int false "Filter by club"
// @Success 200 {object} responses.PaginatedResponse{data=[]Event}
// @Router /event [get]
func (ec *EventController) GetAllEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	searchTerm := c.Query("search")

	eventTypeID, ok := optionalUintQuery(c, "event_type_id")
	if !ok {
		return
	}
	clubID, ok := optionalUintQuery(c, "club_id")
	if !ok {
		return
	}

	events, total, err := ec.repo.GetAllEvents(page, pageSize, searchTerm, eventTypeID, clubID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve events", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Events retrieved successfully", events, total, page, pageSize)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /event/{event_id} [get]
func (ec *EventController) GetEventByID(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event ID format", nil)
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve event", err.Error())
		return
	}
	if event == nil {
		responses.NotFound(c, "Event")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event retrieved successfully", event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Each update appends an immutable snapshot to the event's change history
// @Tags Events
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param event body UpdateEventRequest true "Event update request"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /event/{event_id} [put]
// @Security BearerAuth
func (ec *EventController) UpdateEvent(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event ID format", nil)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve event", err.Error())
		return
	}
	if event == nil {
		responses.NotFound(c, "Event")
		return
	}

	if req.Name != "" {
		event.Name = req.Name
	}
	if req.Locations != "" {
		event.Locations = req.Locations
	}
	if req.DateTime != nil {
		event.DateTime = *req.DateTime
	}
	if req.Prize != nil {
		event.Prize = *req.Prize
	}
	if req.MinTeam != nil {
		event.MinTeam = *req.MinTeam
	}
	if req.MaxTeam != nil {
		event.MaxTeam = *req.MaxTeam
	}
	if req.EventTypeID != nil {
		event.EventTypeID = req.EventTypeID
	}
	if req.ClubID != nil {
		event.ClubID = req.ClubID
	}
	if req.Details != nil {
		event.Details = *req.Details
	}
	if req.ShortDescription != nil {
		event.ShortDescription = *req.ShortDescription
	}
	if req.RuleList != nil {
		event.RuleList = *req.RuleList
	}
	if req.CoordinatorIDs != nil {
		coordinators, err := ec.repo.GetCoordinators(*req.CoordinatorIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.NotFound(c, "Coordinator")
				return
			}
			responses.SendError(c, http.StatusInternalServerError, "Failed to resolve coordinators", err.Error())
			return
		}
		event.Coordinators = coordinators
	}

	if err := ec.repo.UpdateEvent(event, actorID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update event", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event updated successfully", event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Cascades to registrations; rejected while a winners record references the event
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse "Event deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Failure 409 {object} responses.ErrorResponse "Event is referenced by a winners record"
// @Router /event/{event_id} [delete]
// @Security BearerAuth
func (ec *EventController) DeleteEvent(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event ID format", nil)
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil || event == nil {
		responses.NotFound(c, "Event")
		return
	}

	if err := ec.repo.DeleteEvent(uint(eventID), actorID); err != nil {
		if errors.Is(err, ErrProtectedReference) {
			responses.Conflict(c, "Event cannot be deleted while a winners record references it")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete event", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event deleted successfully", nil)
}

// GetEventHistory godoc
// @Summary Get an event's change history
// @Description Snapshots are returned in chronological order, one per recorded change
// @Tags Events
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=[]EventHistory}
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /event/{event_id}/history [get]
// @Security BearerAuth
func (ec *EventController) GetEventHistory(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event ID format", nil)
		return
	}

	history, err := ec.repo.GetHistory(uint(eventID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve event history", err.Error())
		return
	}
	if len(history) == 0 {
		responses.NotFound(c, "Event")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Event history retrieved successfully", history)
}

// UploadPoster godoc
// @Summary Upload an event poster image
// @Tags Events
// @Accept mpfd
// @Produce json
// @Param event_id path int true "Event ID"
// @Param image formData file true "Poster image"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /event/{event_id}/poster [post]
// @Security BearerAuth
func (ec *EventController) UploadPoster(c *gin.Context) {
	ec.uploadAttachment(c, "image", "images/events", uploads.SaveImage, func(e *Event, path string) {
		e.Poster = path
	})
}

// UploadRulesPDF godoc
// @Summary Upload an event rules document
// @Tags Events
// @Accept mpfd
// @Produce json
// @Param event_id path int true "Event ID"
// @Param document formData file true "Rules PDF"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /event/{event_id}/rules [post]
// @Security BearerAuth
func (ec *EventController) UploadRulesPDF(c *gin.Context) {
	ec.uploadAttachment(c, "document", "pdf/events", uploads.SavePDF, func(e *Event, path string) {
		e.RulesPDF = path
	})
}

func (ec *EventController) uploadAttachment(
	c *gin.Context,
	formField, subdir string,
	save func(*gin.Context, *multipart.FileHeader, string, string) (string, error),
	assign func(*Event, string),
) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid event ID format", nil)
		return
	}

	event, err := ec.repo.GetEventByID(uint(eventID))
	if err != nil || event == nil {
		responses.NotFound(c, "Event")
		return
	}

	file, err := c.FormFile(formField)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "File is required: "+err.Error(), nil)
		return
	}

	relPath, err := save(c, file, ec.config.App.UploadDir, subdir)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	assign(event, relPath)
	if err := ec.repo.UpdateEvent(event, actorID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update event", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "File uploaded successfully", event)
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
