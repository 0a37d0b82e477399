package validation

import (
	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/models"
)

// UserRow is an account joined with its optional class and subject names,
// shaped for the admin listings and the student profile.
type UserRow struct {
	ID             uint
	FirstName      string
	LastName       string
	Username       string
	HashedPassword string
	DateOfBirth    *string
	ClassName      *string
	SubjectName    *string
	Role           string
}

func userRowQuery() *gorm.DB {
	return database.DB.Table("users").
		Select(`users.id, users.first_name, users.last_name, users.username,
			users.hashed_password, users.date_of_birth, users.role,
			classes.name AS class_name, subjects.name AS subject_name`).
		Joins("LEFT JOIN classes ON classes.id = users.class_id").
		Joins("LEFT JOIN subjects ON subjects.id = users.subject_id")
}

// StudentRows lists student accounts; with a username it returns exactly
// that student or fails not-found.
func StudentRows(username, actor string) ([]UserRow, error) {
	return roleRows(models.RoleStudent, username, actor)
}

// TeacherRows is StudentRows for the teacher role.
func TeacherRows(username, actor string) ([]UserRow, error) {
	return roleRows(models.RoleTeacher, username, actor)
}

func roleRows(role, username, actor string) ([]UserRow, error) {
	q := userRowQuery().Where("users.role = ?", role)
	if username != "" {
		q = q.Where("users.username = ?", username)
	}
	var rows []UserRow
	if err := q.Order("users.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if username != "" && len(rows) == 0 {
		return nil, errs.NotFound(actor, "User with username: %s not found", username)
	}
	return rows, nil
}

// UserRowByID resolves one account with its class/subject names, for the
// profile view.
func UserRowByID(id uint, actor string) (*UserRow, error) {
	var rows []UserRow
	if err := userRowQuery().
		Where("users.id = ?", id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NotFound(actor, "User with id: %d not found", id)
	}
	return &rows[0], nil
}
