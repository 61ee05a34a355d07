package controller

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/johnzhangfit/verttracker/internal/api/response"
	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/service"
)

// AuthController handles registration and login.
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	TipToe   *float64 `json:"tip-toe"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates a user account.
// @Summary      Register a user
// @Description  Creates an account with a hashed password and the user's tip-toe reach offset in meters.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  RegisterRequest  true  "registration fields"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Validation("request body must be valid JSON"))
		return
	}

	var tipToe float64
	if req.TipToe != nil {
		tipToe = *req.TipToe
	}

	if err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Password, tipToe); err != nil {
		if !apperrors.IsValidation(err) {
			slog.Error("register failed", "username", req.Username, "err", err)
		}
		response.Error(c, err)
		return
	}

	slog.Info("user registered", "username", req.Username)
	response.Msg(c, "registration success")
}

// Login exchanges credentials for a bearer token.
// @Summary      Log in
// @Description  Checks username and password and returns a JWT access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  LoginRequest  true  "credentials"
// @Success      200  {object}  LoginResponse
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.Validation("request body must be valid JSON"))
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username)
		response.Error(c, err)
		return
	}

	response.OK(c, LoginResponse{AccessToken: token})
}
