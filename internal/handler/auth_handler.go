package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"warga/internal/auth"
	"warga/internal/errors"
	"warga/internal/middleware"
	"warga/internal/model"
	"warga/internal/service"
)

// AuthHandler handles registration, login, token echo and logout.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// RegisterRequest represents a citizen registration request. Validation rules
// mirror the public intake form.
type RegisterRequest struct {
	Nama           string `json:"nama" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	NIK            string `json:"NIK" validate:"required,len=16"`
	Alamat         string `json:"alamat" validate:"required,max=100"`
	Telepon        string `json:"telepon" validate:"required,max=15"`
	JenisKelamin   string `json:"jenis_kelamin" validate:"required,len=1"`
	KepalaKeluarga *bool  `json:"kepala_keluarga" validate:"required"`
	TempatLahir    string `json:"tempat_lahir" validate:"required,max=50"`
	TanggalLahir   string `json:"tanggal_lahir" validate:"required,datetime=2006-01-02"`
	JenisUsaha     string `json:"jenis_usaha" validate:"required,max=50"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new citizen
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tanggalLahir, err := time.Parse("2006-01-02", req.TanggalLahir)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tanggal_lahir")
	}

	user := &model.User{
		Nama:           req.Nama,
		Email:          req.Email,
		NIK:            req.NIK,
		Alamat:         req.Alamat,
		Telepon:        req.Telepon,
		JenisKelamin:   req.JenisKelamin,
		KepalaKeluarga: *req.KepalaKeluarga,
		TempatLahir:    req.TempatLahir,
		TanggalLahir:   tanggalLahir,
		JenisUsaha:     req.JenisUsaha,
	}

	created, err := h.authService.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		if err == service.ErrEmailOrNIKTaken {
			return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "EMAIL_OR_NIK_TAKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to register user",
			Code:  "REGISTRATION_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, errors.SuccessResponse{
		Status:  true,
		Message: "Register success",
		Data:    created,
	})
}

// Login godoc
// @Summary Login and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Login success",
		Data:    token,
	})
}

// TestToken godoc
// @Summary Echo the verified claims of the supplied token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /test-token [get]
func (h *AuthHandler) TestToken(c echo.Context) error {
	token, _ := c.Get(middleware.TokenKey).(string)

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Unauthorized",
			Code:  "UNAUTHORIZED",
		})
	}

	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Token valid",
		Data:    claims,
	})
}

// Logout godoc
// @Summary Revoke the current session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.TokenKey).(string)

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Logout success",
	})
}
