package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/models"
)

// AttendanceRow is an attendance record joined with its subject, student
// and recorder.
type AttendanceRow struct {
	ID               uint
	ClassDate        string
	Status           string
	SubjectName      string
	StudentFirstName string
	StudentLastName  string
	AddedByFirstName string
	AddedByLastName  string
}

func attendanceRowQuery() *gorm.DB {
	return database.DB.Table("attendance").
		Select(`attendance.id, attendance.class_date, attendance.status,
			subjects.name AS subject_name,
			s.first_name AS student_first_name, s.last_name AS student_last_name,
			t.first_name AS added_by_first_name, t.last_name AS added_by_last_name`).
		Joins("JOIN users s ON s.id = attendance.student_id").
		Joins("JOIN users t ON t.id = attendance.added_by_id").
		Joins("JOIN subjects ON subjects.id = attendance.subject_id")
}

// ValidStatus rejects anything outside present/absent/excused before the
// value reaches storage.
func ValidStatus(status, actor string) error {
	if !models.ValidStatus(status) {
		return errs.Invalid(actor,
			"Invalid status: %s. Allowed status are 'present', 'absent', 'excused'.", status)
	}
	return nil
}

// AttendanceForStudent returns a student's attendance records, with the
// same role-dependent not-found detail as GradesForStudent.
func AttendanceForStudent(studentID uint, actor, viewerRole string) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	if err := attendanceRowQuery().
		Where("attendance.student_id = ?", studentID).
		Order("attendance.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if viewerRole == models.RoleStudent {
			return nil, errs.NotFound(actor, "Not found")
		}
		return nil, errs.NotFound(actor,
			"No attendance records found for student with id: %d", studentID)
	}
	return rows, nil
}

// AttendanceForClassOnDate returns attendance for every student of a class
// on one date.
func AttendanceForClassOnDate(classID uint, date, actor string) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	if err := attendanceRowQuery().
		Joins("JOIN classes ON classes.id = s.class_id").
		Where("classes.id = ? AND attendance.class_date = ?", classID, date).
		Order("attendance.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFound(actor,
			"No attendance records found for class with id: %d on date: %s", classID, date)
	}
	return rows, nil
}

func AttendanceForStudentInSubject(studentID, subjectID uint, actor string) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	if err := attendanceRowQuery().
		Where("attendance.student_id = ? AND attendance.subject_id = ?", studentID, subjectID).
		Order("attendance.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFound(actor,
			"No attendance records found for student with id: %d in subject with id: %d",
			studentID, subjectID)
	}
	return rows, nil
}

// AttendanceRecord fetches the single record named by edit/delete.
func AttendanceRecord(attendanceID, studentID, subjectID uint, actor string) (*models.Attendance, error) {
	var record models.Attendance
	err := database.DB.
		Where("id = ? AND student_id = ? AND subject_id = ?", attendanceID, studentID, subjectID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(actor,
				"No attendance data found for attendance_id: %d, subject_id: %d, student_id: %d",
				attendanceID, subjectID, studentID)
		}
		return nil, err
	}
	return &record, nil
}
