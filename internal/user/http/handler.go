package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

var ErrPasswordMismatch = apperror.New(http.StatusBadRequest, "passwords do not match")

type UserHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewHandler(userService user.Service, jwtManager *auth.JWTManager) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register creates a guest or host account and signs it in.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.userService.Register(c.Request.Context(), user.RegisterRequest{
		Email:           req.Email,
		Password:        req.Password,
		Role:            user.Role(req.Role),
		TravelFrequency: req.TravelFrequency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, u)
}

// Login authenticates a user using email and password.
// On success, it returns a JWT access token and the user profile.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	u, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

func (h *UserHandler) respondWithToken(c *gin.Context, status int, u *user.User) {
	token, err := h.jwtManager.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(status, AuthResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

// Me retrieves the profile of the currently authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(u)})
}
