package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"warga/internal/handler"
	wargamw "warga/internal/middleware"
	"warga/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/test-connection", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"data": "test"})
	})
	api.POST("/users", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	// Secured routes (require a live session row)
	secured := api.Group("", wargamw.Session(authService))

	secured.GET("/test-token", authHandler.TestToken)
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/saved-news/:id", userHandler.GetSavedNews)
	secured.GET("/users/facilities/:id", userHandler.GetFacilities)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.POST("/logout", authHandler.Logout)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
