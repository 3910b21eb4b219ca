package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/pkg/metrics"
	md "github.com/akoskissak/student-canteen/pkg/middleware"
	"github.com/akoskissak/student-canteen/pkg/validate"
	_ "github.com/akoskissak/student-canteen/swagger"
)

// StudentIDHeader identifies the acting student on admin and cancel requests.
const StudentIDHeader = "studentId"

type Handler struct {
	canteenSvc CanteenService
	log        *zap.Logger
}

func New(canteenSvc CanteenService, log *zap.Logger) *Handler {
	return &Handler{
		canteenSvc: canteenSvc,
		log:        log.Named("handler"),
	}
}

// @title Student canteen API
// @version 1.0
// @description Canteen registry and meal-slot reservations for students.
// @BasePath /
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, StudentIDHeader},
		AllowCredentials: true,
	}))
	e.Use(metrics.Middleware)
	e.Validator = validate.NewCustomValidator()

	e.GET("/manage/health", h.Health)
	e.GET(metrics.Path, echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
	)

	api.POST("/students", h.CreateStudent)
	api.GET("/students/:id", h.GetStudent)

	api.POST("/canteens", h.CreateCanteen)
	api.GET("/canteens", h.ListCanteens)
	api.GET("/canteens/status", h.CapacityStatus)
	api.GET("/canteens/:id", h.GetCanteen)
	api.PUT("/canteens/:id", h.UpdateCanteen)
	api.DELETE("/canteens/:id", h.DeleteCanteen)
	api.GET("/canteens/:id/status", h.CanteenCapacity)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations/:id", h.GetReservation)
	api.DELETE("/reservations/:id", h.CancelReservation)

	api.POST("/clear-database", h.Clear)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// @Summary Wipe every store
// @Tags maintenance
// @Success 204
// @Router /clear-database [post]
func (h *Handler) Clear(c echo.Context) error {
	if err := h.canteenSvc.Clear(c.Request().Context()); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// httpError maps a service error onto its status code. Internal failures are logged and hidden.
func (h *Handler) httpError(err error) error {
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindConflict:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errs.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errs.KindForbidden:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	h.log.Error("internal error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func studentID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(StudentIDHeader)
	if id == "" {
		return "", errs.ErrStudentIDRequired
	}
	return id, nil
}
