package winner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/uploads"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// WinnerController handles payout details, winning teams and per-event podiums.
type WinnerController struct {
	repo   WinnerRepository
	config *config.Config
}

func NewWinnerController(repo WinnerRepository, cfg *config.Config) *WinnerController {
	return &WinnerController{repo: repo, config: cfg}
}

type CreateDetailWinnerRequest struct {
	UserID            uint   `json:"userId" binding:"required"`
	AccountHolderName string `json:"accountHolderName" binding:"omitempty,max=256"`
	FatherName        string `json:"fatherName" binding:"omitempty,max=256"`
	AccountNumber     string `json:"accountNumber" binding:"omitempty,max=64"`
	IFSC              string `json:"ifsc" binding:"omitempty,max=16"`
	PANNumber         string `json:"panNumber" binding:"omitempty,max=16"`
}

type UpdateDetailWinnerRequest struct {
	AccountHolderName *string `json:"accountHolderName" binding:"omitempty,max=256"`
	FatherName        *string `json:"fatherName" binding:"omitempty,max=256"`
	AccountNumber     *string `json:"accountNumber" binding:"omitempty,max=64"`
	IFSC              *string `json:"ifsc" binding:"omitempty,max=16"`
	PANNumber         *string `json:"panNumber" binding:"omitempty,max=16"`
}

type CreateTeamWinnerRequest struct {
	TeamName  string `json:"teamName" binding:"required,min=2,max=256"`
	MemberIDs []uint `json:"memberIds"`
}

type UpdateTeamWinnerRequest struct {
	TeamName  string  `json:"teamName" binding:"omitempty,min=2,max=256"`
	MemberIDs *[]uint `json:"memberIds"`
}

type CreateWinnersRequest struct {
	EventID        uint  `json:"eventId" binding:"required"`
	FirstWinnerID  uint  `json:"firstWinnerId" binding:"required"`
	SecondWinnerID *uint `json:"secondWinnerId"`
	ThirdWinnerID  *uint `json:"thirdWinnerId"`
}

type UpdateWinnersRequest struct {
	FirstWinnerID  *uint `json:"firstWinnerId"`
	SecondWinnerID *uint `json:"secondWinnerId"`
	ThirdWinnerID  *uint `json:"thirdWinnerId"`
}

// CreateDetailWinner godoc
// @Summary Create payout details for a winning participant
// @Tags Winners
// @Accept json
// @Produce json
// @Param detail body CreateDetailWinnerRequest true "Detail winner creation request"
// @Success 201 {object} responses.SuccessResponse{data=DetailWinner}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 409 {object} responses.ErrorResponse "Details already exist for this user"
// @Router /winner/detail [post]
// @Security BearerAuth
func (wc *WinnerController) CreateDetailWinner(c *gin.Context) {
	var req CreateDetailWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	owner, err := wc.repo.GetUserByID(req.UserID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to verify user", err.Error())
		return
	}
	if owner == nil {
		responses.NotFound(c, "User")
		return
	}

	existing, err := wc.repo.GetDetailWinnerByUserID(req.UserID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to verify user", err.Error())
		return
	}
	if existing != nil {
		responses.Conflict(c, "Winner details already exist for this user")
		return
	}

	detail := DetailWinner{
		UserID:            req.UserID,
		AccountHolderName: req.AccountHolderName,
		FatherName:        req.FatherName,
		AccountNumber:     req.AccountNumber,
		IFSC:              req.IFSC,
		PANNumber:         req.PANNumber,
	}
	if err := wc.repo.CreateDetailWinner(&detail); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create winner details", err.Error())
		return
	}
	detail.User = owner

	responses.SendSuccess(c, http.StatusCreated, "Winner details created successfully", detail)
}

// GetAllDetailWinners godoc
// @Summary List detail winners
// @Tags Winners
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]DetailWinner}
// @Router /winner/detail [get]
// @Security BearerAuth
func (wc *WinnerController) GetAllDetailWinners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	details, total, err := wc.repo.GetAllDetailWinners(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winner details", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Winner details retrieved successfully", details, total, page, pageSize)
}

// GetDetailWinnerByID godoc
// @Summary Get detail winner by ID
// @Tags Winners
// @Produce json
// @Param detail_id path int true "Detail winner ID"
// @Success 200 {object} responses.SuccessResponse{data=DetailWinner}
// @Failure 404 {object} responses.ErrorResponse "Winner details not found"
// @Router /winner/detail/{detail_id} [get]
// @Security BearerAuth
func (wc *WinnerController) GetDetailWinnerByID(c *gin.Context) {
	detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid detail winner ID format", nil)
		return
	}

	detail, err := wc.repo.GetDetailWinnerByID(uint(detailID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winner details", err.Error())
		return
	}
	if detail == nil {
		responses.NotFound(c, "Winner details")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winner details retrieved successfully", detail)
}

// UpdateDetailWinner godoc
// @Summary Update detail winner
// @Tags Winners
// @Accept json
// @Produce json
// @Param detail_id path int true "Detail winner ID"
// @Param detail body UpdateDetailWinnerRequest true "Detail winner update request"
// @Success 200 {object} responses.SuccessResponse{data=DetailWinner}
// @Failure 404 {object} responses.ErrorResponse "Winner details not found"
// @Router /winner/detail/{detail_id} [put]
// @Security BearerAuth
func (wc *WinnerController) UpdateDetailWinner(c *gin.Context) {
	detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid detail winner ID format", nil)
		return
	}

	var req UpdateDetailWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	detail, err := wc.repo.GetDetailWinnerByID(uint(detailID))
	if err != nil || detail == nil {
		responses.NotFound(c, "Winner details")
		return
	}

	if req.AccountHolderName != nil {
		detail.AccountHolderName = *req.AccountHolderName
	}
	if req.FatherName != nil {
		detail.FatherName = *req.FatherName
	}
	if req.AccountNumber != nil {
		detail.AccountNumber = *req.AccountNumber
	}
	if req.IFSC != nil {
		detail.IFSC = *req.IFSC
	}
	if req.PANNumber != nil {
		detail.PANNumber = *req.PANNumber
	}

	if err := wc.repo.UpdateDetailWinner(detail); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update winner details", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winner details updated successfully", detail)
}

// UploadPANPhoto godoc
// @Summary Upload the PAN card photo for a detail winner
// @Tags Winners
// @Accept mpfd
// @Produce json
// @Param detail_id path int true "Detail winner ID"
// @Param image formData file true "PAN card image"
// @Success 200 {object} responses.SuccessResponse{data=DetailWinner}
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid file"
// @Failure 404 {object} responses.ErrorResponse "Winner details not found"
// @Router /winner/detail/{detail_id}/pan [post]
// @Security BearerAuth
func (wc *WinnerController) UploadPANPhoto(c *gin.Context) {
	detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid detail winner ID format", nil)
		return
	}

	detail, err := wc.repo.GetDetailWinnerByID(uint(detailID))
	if err != nil || detail == nil {
		responses.NotFound(c, "Winner details")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Image file is required: "+err.Error(), nil)
		return
	}
	if !uploads.IsImage(file.Filename) {
		responses.BadRequest(c, "Only image files are accepted for the PAN photo")
		return
	}

	// Stored under the owner's username so re-uploads replace the old photo.
	var owner string
	if detail.User != nil {
		owner = detail.User.Username
	}
	relPath, err := uploads.SaveNamed(c, file, wc.config.App.UploadDir, "PanCard", uploads.OwnerBaseName(owner))
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	detail.PANPhoto = relPath
	if err := wc.repo.UpdateDetailWinner(detail); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update winner details", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "PAN photo uploaded successfully", detail)
}

// DeleteDetailWinner godoc
// @Summary Delete detail winner
// @Tags Winners
// @Produce json
// @Param detail_id path int true "Detail winner ID"
// @Success 200 {object} responses.SuccessResponse "Winner details deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Winner details not found"
// @Failure 409 {object} responses.ErrorResponse "Details still belong to a team"
// @Router /winner/detail/{detail_id} [delete]
// @Security BearerAuth
func (wc *WinnerController) DeleteDetailWinner(c *gin.Context) {
	detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid detail winner ID format", nil)
		return
	}

	detail, err := wc.repo.GetDetailWinnerByID(uint(detailID))
	if err != nil || detail == nil {
		responses.NotFound(c, "Winner details")
		return
	}

	if err := wc.repo.DeleteDetailWinner(uint(detailID)); err != nil {
		if errors.Is(err, ErrProtectedReference) {
			responses.Conflict(c, "Winner details belong to a team and cannot be deleted")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete winner details", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winner details deleted successfully", nil)
}

// CreateTeamWinner godoc
// @Summary Create a winning team
// @Tags Winners
// @Accept json
// @Produce json
// @Param team body CreateTeamWinnerRequest true "Team winner creation request"
// @Success 201 {object} responses.SuccessResponse{data=TeamWinner}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "One or more members not found"
// @Router /winner/team [post]
// @Security BearerAuth
func (wc *WinnerController) CreateTeamWinner(c *gin.Context) {
	var req CreateTeamWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team := TeamWinner{TeamName: req.TeamName}
	if err := wc.repo.CreateTeamWinner(&team, req.MemberIDs); err != nil {
		if isNotFound(err) {
			responses.NotFound(c, "One or more team members")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to create winning team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Winning team created successfully", team)
}

// GetAllTeamWinners godoc
// @Summary List winning teams
// @Tags Winners
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]TeamWinner}
// @Router /winner/team [get]
// @Security BearerAuth
func (wc *WinnerController) GetAllTeamWinners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	teams, total, err := wc.repo.GetAllTeamWinners(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winning teams", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Winning teams retrieved successfully", teams, total, page, pageSize)
}

// GetTeamWinnerByID godoc
// @Summary Get a winning team by ID
// @Tags Winners
// @Produce json
// @Param team_id path int true "Team winner ID"
// @Success 200 {object} responses.SuccessResponse{data=TeamWinner}
// @Failure 404 {object} responses.ErrorResponse "Winning team not found"
// @Router /winner/team/{team_id} [get]
// @Security BearerAuth
func (wc *WinnerController) GetTeamWinnerByID(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team winner ID format", nil)
		return
	}

	team, err := wc.repo.GetTeamWinnerByID(uint(teamID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winning team", err.Error())
		return
	}
	if team == nil {
		responses.NotFound(c, "Winning team")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winning team retrieved successfully", team)
}

// UpdateTeamWinner godoc
// @Summary Update a winning team
// @Tags Winners
// @Accept json
// @Produce json
// @Param team_id path int true "Team winner ID"
// @Param team body UpdateTeamWinnerRequest true "Team winner update request"
// @Success 200 {object} responses.SuccessResponse{data=TeamWinner}
// @Failure 404 {object} responses.ErrorResponse "Winning team not found"
// @Router /winner/team/{team_id} [put]
// @Security BearerAuth
func (wc *WinnerController) UpdateTeamWinner(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team winner ID format", nil)
		return
	}

	var req UpdateTeamWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	team, err := wc.repo.GetTeamWinnerByID(uint(teamID))
	if err != nil || team == nil {
		responses.NotFound(c, "Winning team")
		return
	}

	if req.TeamName != "" {
		team.TeamName = req.TeamName
	}
	var memberIDs []uint
	if req.MemberIDs != nil {
		memberIDs = *req.MemberIDs
		if memberIDs == nil {
			memberIDs = []uint{}
		}
	}

	if err := wc.repo.UpdateTeamWinner(team, memberIDs); err != nil {
		if isNotFound(err) {
			responses.NotFound(c, "One or more team members")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to update winning team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winning team updated successfully", team)
}

// DeleteTeamWinner godoc
// @Summary Delete a winning team
// @Tags Winners
// @Produce json
// @Param team_id path int true "Team winner ID"
// @Success 200 {object} responses.SuccessResponse "Winning team deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Winning team not found"
// @Failure 409 {object} responses.ErrorResponse "Team is still on a podium"
// @Router /winner/team/{team_id} [delete]
// @Security BearerAuth
func (wc *WinnerController) DeleteTeamWinner(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team winner ID format", nil)
		return
	}

	team, err := wc.repo.GetTeamWinnerByID(uint(teamID))
	if err != nil || team == nil {
		responses.NotFound(c, "Winning team")
		return
	}

	if err := wc.repo.DeleteTeamWinner(uint(teamID)); err != nil {
		if errors.Is(err, ErrProtectedReference) {
			responses.Conflict(c, "Team is placed in an event podium and cannot be deleted")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete winning team", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winning team deleted successfully", nil)
}

// CreateWinners godoc
// @Summary Record the podium for an event
// @Tags Winners
// @Accept json
// @Produce json
// @Param winners body CreateWinnersRequest true "Winners creation request"
// @Success 201 {object} responses.SuccessResponse{data=Winners}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Event or team not found"
// @Failure 409 {object} responses.ErrorResponse "Event already has a podium"
// @Router /winner [post]
// @Security BearerAuth
func (wc *WinnerController) CreateWinners(c *gin.Context) {
	var req CreateWinnersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	exists, err := wc.repo.EventExists(req.EventID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to verify event", err.Error())
		return
	}
	if !exists {
		responses.NotFound(c, "Event")
		return
	}

	current, err := wc.repo.GetWinnersByEventID(req.EventID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to verify event", err.Error())
		return
	}
	if current != nil {
		responses.Conflict(c, "Winners are already recorded for this event")
		return
	}

	placeIDs := []uint{req.FirstWinnerID}
	if req.SecondWinnerID != nil {
		placeIDs = append(placeIDs, *req.SecondWinnerID)
	}
	if req.ThirdWinnerID != nil {
		placeIDs = append(placeIDs, *req.ThirdWinnerID)
	}
	for _, id := range placeIDs {
		team, err := wc.repo.GetTeamWinnerByID(id)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to verify team", err.Error())
			return
		}
		if team == nil {
			responses.NotFound(c, "Winning team")
			return
		}
	}

	winners := Winners{
		EventID:        req.EventID,
		FirstWinnerID:  req.FirstWinnerID,
		SecondWinnerID: req.SecondWinnerID,
		ThirdWinnerID:  req.ThirdWinnerID,
	}
	if err := wc.repo.CreateWinners(&winners); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to record winners", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Winners recorded successfully", winners)
}

// GetAllWinners godoc
// @Summary List event podiums
// @Tags Winners
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Winners}
// @Router /winner [get]
func (wc *WinnerController) GetAllWinners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	list, total, err := wc.repo.GetAllWinners(page, pageSize)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winners", err.Error())
		return
	}

	responses.SendPaginated(c, http.StatusOK, "Winners retrieved successfully", list, total, page, pageSize)
}

// GetWinnersByID godoc
// @Summary Get an event podium by ID
// @Tags Winners
// @Produce json
// @Param winners_id path int true "Winners record ID"
// @Success 200 {object} responses.SuccessResponse{data=Winners}
// @Failure 404 {object} responses.ErrorResponse "Winners not found"
// @Router /winner/{winners_id} [get]
func (wc *WinnerController) GetWinnersByID(c *gin.Context) {
	winnersID, err := strconv.ParseUint(c.Param("winners_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid winners ID format", nil)
		return
	}

	winners, err := wc.repo.GetWinnersByID(uint(winnersID))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve winners", err.Error())
		return
	}
	if winners == nil {
		responses.NotFound(c, "Winners")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winners retrieved successfully", winners)
}

// UpdateWinners godoc
// @Summary Update an event podium
// @Tags Winners
// @Accept json
// @Produce json
// @Param winners_id path int true "Winners record ID"
// @Param winners body UpdateWinnersRequest true "Winners update request"
// @Success 200 {object} responses.SuccessResponse{data=Winners}
// @Failure 404 {object} responses.ErrorResponse "Winners or team not found"
// @Router /winner/{winners_id} [put]
// @Security BearerAuth
func (wc *WinnerController) UpdateWinners(c *gin.Context) {
	winnersID, err := strconv.ParseUint(c.Param("winners_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid winners ID format", nil)
		return
	}

	var req UpdateWinnersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	winners, err := wc.repo.GetWinnersByID(uint(winnersID))
	if err != nil || winners == nil {
		responses.NotFound(c, "Winners")
		return
	}

	var placeIDs []uint
	if req.FirstWinnerID != nil {
		placeIDs = append(placeIDs, *req.FirstWinnerID)
	}
	if req.SecondWinnerID != nil {
		placeIDs = append(placeIDs, *req.SecondWinnerID)
	}
	if req.ThirdWinnerID != nil {
		placeIDs = append(placeIDs, *req.ThirdWinnerID)
	}
	for _, id := range placeIDs {
		team, err := wc.repo.GetTeamWinnerByID(id)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to verify team", err.Error())
			return
		}
		if team == nil {
			responses.NotFound(c, "Winning team")
			return
		}
	}

	if req.FirstWinnerID != nil {
		winners.FirstWinnerID = *req.FirstWinnerID
		winners.FirstWinner = nil
	}
	if req.SecondWinnerID != nil {
		winners.SecondWinnerID = req.SecondWinnerID
		winners.SecondWinner = nil
	}
	if req.ThirdWinnerID != nil {
		winners.ThirdWinnerID = req.ThirdWinnerID
		winners.ThirdWinner = nil
	}

	if err := wc.repo.UpdateWinners(winners); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update winners", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winners updated successfully", winners)
}

// DeleteWinners godoc
// @Summary Delete an event podium
// @Tags Winners
// @Produce json
// @Param winners_id path int true "Winners record ID"
// @Success 200 {object} responses.SuccessResponse "Winners deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Winners not found"
// @Router /winner/{winners_id} [delete]
// @Security BearerAuth
func (wc *WinnerController) DeleteWinners(c *gin.Context) {
	winnersID, err := strconv.ParseUint(c.Param("winners_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid winners ID format", nil)
		return
	}

	winners, err := wc.repo.GetWinnersByID(uint(winnersID))
	if err != nil || winners == nil {
		responses.NotFound(c, "Winners")
		return
	}

	if err := wc.repo.DeleteWinners(uint(winnersID)); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete winners", err.Error())
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Winners deleted successfully", nil)
}
