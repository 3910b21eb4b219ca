package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

// @Summary Book a meal slot
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body model.CreateReservationRequest true "reservation"
// @Success 201 {object} model.Reservation
// @Failure 400,404 {object} echo.HTTPError
// @Router /reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.canteenSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Failure 404 {object} echo.HTTPError
// @Router /reservations/{id} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	r, err := h.canteenSvc.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}

// @Summary Cancel own reservation
// @Tags reservations
// @Produce json
// @Param studentId header string true "owner student id"
// @Param id path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Failure 400,403,404 {object} echo.HTTPError
// @Router /reservations/{id} [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	sid, err := studentID(c)
	if err != nil {
		return h.httpError(err)
	}
	r, err := h.canteenSvc.CancelReservation(c.Request().Context(), c.Param("id"), sid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, r)
}
