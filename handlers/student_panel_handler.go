package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/response"
	"github.com/michalswider/electronic-gradebook/validation"
)

// StudentPanelHandler serves the student's own records; every query is
// scoped to the authenticated identity's id.
type StudentPanelHandler struct{}

func NewStudentPanelHandler() *StudentPanelHandler { return &StudentPanelHandler{} }

type passwordResetRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// GET /student/profile
func (h *StudentPanelHandler) Profile(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	row, err := validation.UserRowByID(identity.ID, identity.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.Profile(*row))
}

// PUT /student/reset-password
func (h *StudentPanelHandler) ResetPassword(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	var req passwordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := validation.UserByID(identity.ID, identity.Username)
	if err != nil {
		return err
	}
	if err := validation.VerifyPassword(user.HashedPassword, req.OldPassword, identity.Username); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.HashedPassword = string(hashed)
	if err := database.DB.Save(user).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /student/grades
func (h *StudentPanelHandler) Grades(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	rows, err := validation.GradesForStudent(identity.ID, identity.Username, models.RoleStudent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.StudentGradesBySubject(rows))
}

// GET /student/attendance
func (h *StudentPanelHandler) Attendance(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	rows, err := validation.AttendanceForStudent(identity.ID, identity.Username, models.RoleStudent)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.StudentAttendanceBySubject(rows))
}
