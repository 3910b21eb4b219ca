package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akoskissak/student-canteen/canteen/internal/model"
)

// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body model.CreateStudentRequest true "student"
// @Success 201 {object} model.Student
// @Failure 400 {object} echo.HTTPError
// @Router /students [post]
func (h *Handler) CreateStudent(c echo.Context) error {
	var req model.CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st, err := h.canteenSvc.CreateStudent(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "student id"
// @Success 200 {object} model.Student
// @Failure 404 {object} echo.HTTPError
// @Router /students/{id} [get]
func (h *Handler) GetStudent(c echo.Context) error {
	st, err := h.canteenSvc.GetStudent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}
