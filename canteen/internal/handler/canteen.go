package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/akoskissak/student-canteen/canteen/internal/errs"
	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

// @Summary Create a canteen
// @Tags canteens
// @Accept json
// @Produce json
// @Param studentId header string true "admin student id"
// @Param canteen body model.CreateCanteenRequest true "canteen"
// @Success 201 {object} model.Canteen
// @Failure 400,403,404 {object} echo.HTTPError
// @Router /canteens [post]
func (h *Handler) CreateCanteen(c echo.Context) error {
	adminID, err := studentID(c)
	if err != nil {
		return h.httpError(err)
	}
	var req model.CreateCanteenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	canteen, err := h.canteenSvc.CreateCanteen(c.Request().Context(), adminID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, canteen)
}

// @Summary List canteens
// @Tags canteens
// @Produce json
// @Success 200 {array} model.Canteen
// @Router /canteens [get]
func (h *Handler) ListCanteens(c echo.Context) error {
	list, err := h.canteenSvc.ListCanteens(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary Get a canteen
// @Tags canteens
// @Produce json
// @Param id path string true "canteen id"
// @Success 200 {object} model.Canteen
// @Failure 404 {object} echo.HTTPError
// @Router /canteens/{id} [get]
func (h *Handler) GetCanteen(c echo.Context) error {
	canteen, err := h.canteenSvc.GetCanteen(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, canteen)
}

// @Summary Partially update a canteen
// @Tags canteens
// @Accept json
// @Produce json
// @Param studentId header string true "admin student id"
// @Param id path string true "canteen id"
// @Param canteen body model.CanteenUpdate true "fields to change"
// @Success 200 {object} model.Canteen
// @Failure 400,403,404 {object} echo.HTTPError
// @Router /canteens/{id} [put]
func (h *Handler) UpdateCanteen(c echo.Context) error {
	adminID, err := studentID(c)
	if err != nil {
		return h.httpError(err)
	}
	var upd model.CanteenUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	canteen, err := h.canteenSvc.UpdateCanteen(c.Request().Context(), adminID, c.Param("id"), upd)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, canteen)
}

// @Summary Delete a canteen and its reservations
// @Tags canteens
// @Param studentId header string true "admin student id"
// @Param id path string true "canteen id"
// @Success 204
// @Failure 400,403,404 {object} echo.HTTPError
// @Router /canteens/{id} [delete]
func (h *Handler) DeleteCanteen(c echo.Context) error {
	adminID, err := studentID(c)
	if err != nil {
		return h.httpError(err)
	}
	if err := h.canteenSvc.DeleteCanteen(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Free places per slot for all canteens
// @Tags availability
// @Produce json
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Param startTime query string true "HH:MM"
// @Param endTime query string true "HH:MM"
// @Param duration query int true "30 or 60"
// @Success 200 {array} model.CanteenCapacity
// @Failure 400 {object} echo.HTTPError
// @Router /canteens/status [get]
func (h *Handler) CapacityStatus(c echo.Context) error {
	q, err := capacityQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	list, err := h.canteenSvc.CapacityStatus(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary Free places per slot for one canteen
// @Tags availability
// @Produce json
// @Param id path string true "canteen id"
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Param startTime query string true "HH:MM"
// @Param endTime query string true "HH:MM"
// @Param duration query int true "30 or 60"
// @Success 200 {object} model.CanteenCapacity
// @Failure 400 {object} echo.HTTPError
// @Router /canteens/{id}/status [get]
func (h *Handler) CanteenCapacity(c echo.Context) error {
	q, err := capacityQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	status, err := h.canteenSvc.CanteenCapacity(c.Request().Context(), id, q)
	if err != nil {
		// an unknown canteen simply has no slots
		if errors.Is(err, errs.ErrCanteenNotFound) {
			return c.JSON(http.StatusOK, model.CanteenCapacity{CanteenID: id, Slots: []model.Slot{}})
		}
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, status)
}

func capacityQuery(c echo.Context) (model.CapacityQuery, error) {
	var (
		q   model.CapacityQuery
		err error
	)
	for _, name := range []string{"startDate", "endDate", "startTime", "endTime", "duration"} {
		if c.QueryParam(name) == "" {
			return q, errors.Errorf("%s is required", name)
		}
	}
	if q.StartDate, err = model.ParseDate(c.QueryParam("startDate")); err != nil {
		return q, errors.Wrap(err, "startDate")
	}
	if q.EndDate, err = model.ParseDate(c.QueryParam("endDate")); err != nil {
		return q, errors.Wrap(err, "endDate")
	}
	if q.StartTime, err = model.ParseClock(c.QueryParam("startTime")); err != nil {
		return q, errors.Wrap(err, "startTime")
	}
	if q.EndTime, err = model.ParseClock(c.QueryParam("endTime")); err != nil {
		return q, errors.Wrap(err, "endTime")
	}
	if q.Duration, err = strconv.Atoi(c.QueryParam("duration")); err != nil {
		return q, errors.New("duration is invalid")
	}
	return q, nil
}
