package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/validation"
)

type ClassHandler struct{}

func NewClassHandler() *ClassHandler { return &ClassHandler{} }

type classRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// POST /admin/classes
func (h *ClassHandler) Create(c echo.Context) error {
	var req classRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	class := models.Class{Name: req.Name}
	if err := database.DB.Create(&class).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GET /admin/classes
func (h *ClassHandler) List(c echo.Context) error {
	var classes []models.Class
	if err := database.DB.Order("id").Find(&classes).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

// PUT /admin/classes/:id
func (h *ClassHandler) Update(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	class, err := validation.ClassExists(id, actor)
	if err != nil {
		return err
	}

	var req classRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	class.Name = req.Name
	if err := database.DB.Save(class).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /admin/classes/:id
func (h *ClassHandler) Delete(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := validation.ClassExists(id, actor); err != nil {
		return err
	}
	if err := validation.ClassDeletable(id, actor); err != nil {
		return err
	}
	if err := database.DB.Delete(&models.Class{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
