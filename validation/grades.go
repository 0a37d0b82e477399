package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/models"
)

// GradeRow is a grade joined with its subject, student and recorder, as
// needed by the grouped projections.
type GradeRow struct {
	ID               uint
	Grade            int
	Date             string
	SubjectName      string
	StudentFirstName string
	StudentLastName  string
	AddedByFirstName string
	AddedByLastName  string
}

func gradeRowQuery() *gorm.DB {
	return database.DB.Table("grades").
		Select(`grades.id, grades.grade, grades.date, subjects.name AS subject_name,
			s.first_name AS student_first_name, s.last_name AS student_last_name,
			t.first_name AS added_by_first_name, t.last_name AS added_by_last_name`).
		Joins("JOIN users s ON s.id = grades.student_id").
		Joins("JOIN users t ON t.id = grades.added_by_id").
		Joins("JOIN subjects ON subjects.id = grades.subject_id")
}

// GradesForStudent returns all of a student's grades. The not-found detail
// depends on who is asking: staff get the student id echoed back, students
// themselves get a bare "Not found".
func GradesForStudent(studentID uint, actor, viewerRole string) ([]GradeRow, error) {
	var rows []GradeRow
	if err := gradeRowQuery().
		Where("grades.student_id = ?", studentID).
		Order("grades.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if viewerRole == models.RoleStudent {
			return nil, errs.NotFound(actor, "Not found")
		}
		return nil, errs.NotFound(actor, "Grades for user with id: %d not found", studentID)
	}
	return rows, nil
}

// GradesForClassSubject returns every grade in a subject for students of a
// class. Class membership is transitive through users.class_id.
func GradesForClassSubject(classID, subjectID uint, actor string) ([]GradeRow, error) {
	var rows []GradeRow
	if err := gradeRowQuery().
		Joins("JOIN classes ON classes.id = s.class_id").
		Where("classes.id = ? AND grades.subject_id = ?", classID, subjectID).
		Order("grades.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFound(actor,
			"No grades found for class id: %d and subject id: %d", classID, subjectID)
	}
	return rows, nil
}

// GradeValuesForAverage returns the raw grade values for a student in a
// subject. Zero matching rows is a not-found failure, never an average of
// zero.
func GradeValuesForAverage(subjectID, studentID uint, actor string) ([]int, error) {
	var values []int
	if err := database.DB.Model(&models.Grade{}).
		Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		Pluck("grade", &values).Error; err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errs.NotFound(actor,
			"No average found for subject id: %d and student id: %d.", subjectID, studentID)
	}
	return values, nil
}

// GradeValuesForClassAverage returns all grade values of students in a
// class, across subjects.
func GradeValuesForClassAverage(classID uint, actor string) ([]int, error) {
	var values []int
	if err := database.DB.Table("grades").
		Joins("JOIN users ON users.id = grades.student_id").
		Joins("JOIN classes ON classes.id = users.class_id").
		Where("classes.id = ?", classID).
		Pluck("grades.grade", &values).Error; err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errs.NotFound(actor, "No average found for class id: %d.", classID)
	}
	return values, nil
}

// GradeForEdit fetches the grade row named by the edit operation.
func GradeForEdit(studentID, subjectID, gradeID uint, actor string) (*models.Grade, error) {
	grade, err := gradeByKeys(studentID, subjectID, gradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(actor,
				"Grade with id: %d not found, for user id: %d on subject id: %d",
				gradeID, studentID, subjectID)
		}
		return nil, err
	}
	return grade, nil
}

// GradeForDelete fetches the grade row named by the delete operation.
func GradeForDelete(studentID, subjectID, gradeID uint, actor string) (*models.Grade, error) {
	grade, err := gradeByKeys(studentID, subjectID, gradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(actor,
				"Grade with the specified student_id, subject_id, and grade_id not found")
		}
		return nil, err
	}
	return grade, nil
}

func gradeByKeys(studentID, subjectID, gradeID uint) (*models.Grade, error) {
	var grade models.Grade
	err := database.DB.
		Where("student_id = ? AND subject_id = ? AND id = ?", studentID, subjectID, gradeID).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}
