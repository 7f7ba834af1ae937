package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"warga/internal/errors"
	"warga/internal/service"
)

// UserHandler bundles the user directory endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer over the user service.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Nama           *string `json:"nama" validate:"omitempty,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Alamat         *string `json:"alamat" validate:"omitempty,max=100"`
	Telepon        *string `json:"telepon" validate:"omitempty,max=15"`
	JenisKelamin   *string `json:"jenis_kelamin" validate:"omitempty,len=1"`
	KepalaKeluarga *bool   `json:"kepala_keluarga"`
	TempatLahir    *string `json:"tempat_lahir" validate:"omitempty,max=50"`
	TanggalLahir   *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	JenisUsaha     *string `json:"jenis_usaha" validate:"omitempty,max=50"`
}

// Fields converts the request into a keyed column update.
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Nama != nil {
		fields["nama"] = *r.Nama
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Alamat != nil {
		fields["alamat"] = *r.Alamat
	}
	if r.Telepon != nil {
		fields["telepon"] = *r.Telepon
	}
	if r.JenisKelamin != nil {
		fields["jenis_kelamin"] = *r.JenisKelamin
	}
	if r.KepalaKeluarga != nil {
		fields["kepala_keluarga"] = *r.KepalaKeluarga
	}
	if r.TempatLahir != nil {
		fields["tempat_lahir"] = *r.TempatLahir
	}
	if r.TanggalLahir != nil {
		// validated upstream, parse cannot fail here
		t, _ := time.Parse("2006-01-02", *r.TanggalLahir)
		fields["tanggal_lahir"] = t
	}
	if r.JenisUsaha != nil {
		fields["jenis_usaha"] = *r.JenisUsaha
	}
	return fields
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Get users success",
		Data:    users,
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Get user success",
		Data:    user,
	})
}

// GetSavedNews godoc
// @Summary Get a user together with their saved news
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/saved-news/{id} [get]
func (h *UserHandler) GetSavedNews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	doc, err := h.svc.GetSavedNews(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Get saved news success",
		Data:    doc,
	})
}

// GetFacilities godoc
// @Summary Get a user together with their aggregated facilities
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/facilities/{id} [get]
func (h *UserHandler) GetFacilities(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	doc, err := h.svc.GetFacilities(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Get facilities success",
		Data:    doc,
	})
}

// UpdateUser godoc
// @Summary Update user fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Partial user fields"
// @Success 200 {object} errors.SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateUser(c.Request().Context(), id, req.Fields()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, errors.SuccessResponse{
		Status:  true,
		Message: "Update user success",
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func mapError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
