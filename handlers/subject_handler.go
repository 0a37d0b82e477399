package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/validation"
)

type SubjectHandler struct{}

func NewSubjectHandler() *SubjectHandler { return &SubjectHandler{} }

type subjectRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// POST /admin/subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	subject := models.Subject{Name: req.Name}
	if err := database.DB.Create(&subject).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GET /admin/subjects
func (h *SubjectHandler) List(c echo.Context) error {
	var subjects []models.Subject
	if err := database.DB.Order("id").Find(&subjects).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subjects)
}

// PUT /admin/subjects/:id
func (h *SubjectHandler) Update(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	subject, err := validation.SubjectExists(id, actor)
	if err != nil {
		return err
	}

	var req subjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	subject.Name = req.Name
	if err := database.DB.Save(subject).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /admin/subjects/:id
func (h *SubjectHandler) Delete(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if _, err := validation.SubjectExists(id, actor); err != nil {
		return err
	}
	if err := validation.SubjectDeletable(id, actor); err != nil {
		return err
	}
	if err := database.DB.Delete(&models.Subject{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
