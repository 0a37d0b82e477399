package handlers

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
	"github.com/michalswider/electronic-gradebook/response"
	"github.com/michalswider/electronic-gradebook/validation"
)

type GradeHandler struct{}

func NewGradeHandler() *GradeHandler { return &GradeHandler{} }

type addGradeRequest struct {
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
	SubjectID uint   `json:"subject_id" validate:"required,gt=0"`
	Grade     int    `json:"grade" validate:"required,gt=0,lt=7"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type editGradeRequest struct {
	Grade int    `json:"grade" validate:"required,gt=0,lt=7"`
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
}

func roundAverage(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(values))*100) / 100
}

// POST /teacher/grades/add-grade
func (h *GradeHandler) Add(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	var req addGradeRequest
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

	grade := models.Grade{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Grade:     req.Grade,
		Date:      req.Date,
		AddedByID: identity.ID,
	}
	if err := database.DB.Create(&grade).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Grade added successfully"})
}

// GET /teacher/grades/:studentId
func (h *GradeHandler) ListForStudent(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	rows, err := validation.GradesForStudent(studentID, actor, models.RoleTeacher)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.GradesBySubject(rows))
}

// GET /teacher/grades/class/:classId/subject/:subjectId
func (h *GradeHandler) ListForClassSubject(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	classID, err := pathID(c, "classId")
	if err != nil {
		return err
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	if _, err := validation.ClassExists(classID, actor); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, actor); err != nil {
		return err
	}
	rows, err := validation.GradesForClassSubject(classID, subjectID, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.GradesByStudent(rows))
}

// GET /teacher/grades/average/subject/:subjectId?student_id=
func (h *GradeHandler) AverageForSubject(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	studentID, err := queryID(c, "student_id")
	if err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, actor); err != nil {
		return err
	}
	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	values, err := validation.GradeValuesForAverage(subjectID, studentID, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]float64{"average_grade": roundAverage(values)})
}

// GET /teacher/grades/average/class/:classId
func (h *GradeHandler) AverageForClass(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	classID, err := pathID(c, "classId")
	if err != nil {
		return err
	}
	class, err := validation.ClassExists(classID, actor)
	if err != nil {
		return err
	}
	values, err := validation.GradeValuesForClassAverage(classID, actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.AverageByClass(class.Name, roundAverage(values)))
}

// PUT /teacher/grades/:studentId?subject_id=&grade_id=
func (h *GradeHandler) Edit(c echo.Context) error {
	identity, _ := middlewares.CurrentIdentity(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	subjectID, err := queryID(c, "subject_id")
	if err != nil {
		return err
	}
	gradeID, err := queryID(c, "grade_id")
	if err != nil {
		return err
	}

	if _, err := validation.StudentByID(studentID, identity.Username); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, identity.Username); err != nil {
		return err
	}
	grade, err := validation.GradeForEdit(studentID, subjectID, gradeID, identity.Username)
	if err != nil {
		return err
	}

	var req editGradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	grade.Grade = req.Grade
	grade.Date = req.Date
	grade.AddedByID = identity.ID // recorder re-stamped to the editor
	if err := database.DB.Save(grade).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DELETE /teacher/grades/:studentId/:subjectId/:gradeId
func (h *GradeHandler) Delete(c echo.Context) error {
	actor := middlewares.ActingUsername(c)

	studentID, err := pathID(c, "studentId")
	if err != nil {
		return err
	}
	subjectID, err := pathID(c, "subjectId")
	if err != nil {
		return err
	}
	gradeID, err := pathID(c, "gradeId")
	if err != nil {
		return err
	}

	if _, err := validation.StudentByID(studentID, actor); err != nil {
		return err
	}
	if _, err := validation.SubjectExists(subjectID, actor); err != nil {
		return err
	}
	grade, err := validation.GradeForDelete(studentID, subjectID, gradeID, actor)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(grade).Error; err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
