package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/response"
	"github.com/michalswider/electronic-gradebook/validation"
)

type AttendanceHandler struct{}

func NewAttendanceHandler() *AttendanceHandler { return &AttendanceHandler{} }

type addAttendanceRequest struct {
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
	SubjectID uint   `json:"subject_id" validate:"required,gt=0"`
	ClassDate string `json:"class_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required"`
}

type editAttendanceRequest struct {
	Status string `json:"status" validate:"required"`
}

// POST /teacher/add-attendance
func (h *AttendanceHandler) Add(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	var req addAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := validation.StudentByID(req.StudentID, identity.Username); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(req.SubjectID, identity.Username); err != nil {
		return err
	}
	if err := validation.ValidStatus(req.Status, identity.Username); err != nil {
		return err
	}

	record := models.Attendance{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		ClassDate: req.ClassDate,
		Status:    req.Status,
		AddedByID: identity.ID,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GET /teacher/show-student-attendance/:studentId
func (h *AttendanceHandler) ListForStudent(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	rows, err := validation.AttendanceForStudent(studentID, actor, models.RoleTeacher)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.AttendanceBySubject(rows))
}

// GET /teacher/attendance/class/:classId/date?date=
func (h *AttendanceHandler) ListForClassOnDate(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	classID, err := pathID(c, "classId")
	if err != nil {
		return err
	}
	date := c.QueryParam("date")
	if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid query parameter: date")
	}
	if _, err := validation.ClassExists(classID, actor); err != nil {
		return err
	}
	rows, err := validation.AttendanceForClassOnDate(classID, date, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.AttendanceByStudent(rows))
}

// GET /teacher/attendance/subject/:subjectId/student/:studentId
func (h *AttendanceHandler) ListForStudentInSubject(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, actor); err != nil {
		return err
	}
	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	rows, err := validation.AttendanceForStudentInSubject(studentID, subjectID, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.AttendanceList(rows))
}

// PUT /teacher/edit-attendance/:studentId/:subjectId/:attendanceId
func (h *AttendanceHandler) EditStatus(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	attendanceID, err := pathID(c, "attendanceId")
	if err != nil {
		return err
	}

	if _, err := validation.StudentByID(studentID, identity.Username); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, identity.Username); err != nil {
		return err
	}
	record, err := validation.AttendanceRecord(attendanceID, studentID, subjectID, identity.Username)
	if err != nil {
		return err
	}

	var req editAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := validation.ValidStatus(req.Status, identity.Username); err != nil {
		return err
	}

	record.Status = req.Status
	record.AddedByID = identity.ID // recorder re-stamped to the editor
	if err := database.DB.Save(record).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /teacher/delete-attendance/:studentId/:subjectId/:attendanceId
func (h *AttendanceHandler) Delete(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	attendanceID, err := pathID(c, "attendanceId")
	if err != nil {
		return err
	}

	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, actor); err != nil {
		return err
	}
	record, err := validation.AttendanceRecord(attendanceID, studentID, subjectID, actor)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(record).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
