package auth

import (
	"net/http"
	"strings"

	"github.com/RohanMehta-11/festly/config"
	"github.com/RohanMehta-11/festly/internal/middleware"
	"github.com/RohanMehta-11/festly/internal/user"
	"github.com/RohanMehta-11/festly/pkg/responses"
	"github.com/RohanMehta-11/festly/pkg/token"
	"github.com/RohanMehta-11/festly/pkg/validator"
	"github.com/RohanMehta-11/festly/utils"
	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and the current-user endpoint.
type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration request"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Username or email already taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if existing, _ := ac.repo.GetUserByUsername(req.Username); existing != nil {
		responses.SendError(c, http.StatusConflict, "Username already taken", nil)
		return
	}
	if existing, _ := ac.repo.GetUserByEmail(req.Email); existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already registered", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to hash password", nil)
		return
	}

	u := user.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	ac.respondWithToken(c, http.StatusCreated, "Account created successfully", &u)
}

// Login godoc
// @Summary Log in with username or email
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	var u *user.User
	var err error
	if strings.Contains(req.LoginIdentifier, "@") {
		u, err = ac.repo.GetUserByEmail(req.LoginIdentifier)
	} else {
		u, err = ac.repo.GetUserByUsername(req.LoginIdentifier)
	}
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}
	if u == nil || !utils.CheckPasswordHash(req.Password, u.Password) {
		responses.SendError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	ac.respondWithToken(c, http.StatusOK, "Logged in successfully", u)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error(), nil)
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}

	roles, _ := ac.repo.GetUserRoles(u.ID)
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Roles:    roles,
	})
}

func (ac *AuthController) respondWithToken(c *gin.Context, status int, message string, u *user.User) {
	accessToken, err := token.GenerateJWT(u.ID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to generate token", nil)
		return
	}

	roles, _ := ac.repo.GetUserRoles(u.ID)
	responses.SendSuccess(c, status, message, AuthResponse{
		AccessToken: accessToken,
		User: UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Name:     u.Name,
			Roles:    roles,
		},
	})
}
