// Package validation holds the existence, uniqueness and
// referential-integrity checks that run before every mutation. Each check
// fails with a typed errs.Error naming the acting user; callers propagate
// the error untouched.
package validation

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/models"
)

// UsernameAvailable fails when the username is already taken. Run on
// create and on edit-to-a-new-username.
func UsernameAvailable(username, actor string) error {
	var existing models.User
	err := database.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return errs.Exist(actor, "Username: %s already exist.", username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// UserByUsername looks a user up by username, optionally constrained to a
// role ("student", "teacher") or unconstrained ("all").
func UserByUsername(username, role, actor string) (*models.User, error) {
	tx := database.DB.Where("username = ?", username)
	if role != "all" {
		tx = tx.Where("role = ?", role)
	}
	var user models.User
	if err := tx.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(actor, "User with username: %s not found", username)
		}
		return nil, err
	}
	return &user, nil
}

// StudentByID fails unless a user with the id exists and has the student
// role. Run before every grade/attendance mutation naming a student.
func StudentByID(id uint, actor string) (*models.User, error) {
	return userByID(id, models.RoleStudent, actor)
}

// UserByID looks a user up by id regardless of role.
func UserByID(id uint, actor string) (*models.User, error) {
	return userByID(id, "", actor)
}

func userByID(id uint, role, actor string) (*models.User, error) {
	tx := database.DB.Where("id = ?", id)
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	var user models.User
	if err := tx.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound(actor, "User with id: %d not found", id)
		}
		return nil, err
	}
	return &user, nil
}

// UserDeletable blocks deletion while any grade or attendance row still
// references the user, as student or as recorder. The first referencing
// table is named in the error.
func UserDeletable(id uint, actor string) error {
	var count int64
	if err := database.DB.Model(&models.Grade{}).
		Where("student_id = ? OR added_by_id = ?", id, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return userDeleteBlocked(id, "grades", actor)
	}
	if err := database.DB.Model(&models.Attendance{}).
		Where("student_id = ? OR added_by_id = ?", id, id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return userDeleteBlocked(id, "attendance", actor)
	}
	return nil
}

func userDeleteBlocked(id uint, table, actor string) error {
	return errs.Conflict(actor,
		"User with id: %d cannot be deleted because it is associated with table: %s.", id, table)
}

// ValidRole rejects anything outside the closed role set before the value
// reaches storage.
func ValidRole(role, actor string) error {
	if !models.ValidRole(role) {
		return errs.Invalid(actor,
			"Invalid role: %s. Allowed roles are 'admin', 'teacher','student'.", role)
	}
	return nil
}

// VerifyPassword checks a plaintext candidate against the stored hash.
// Used by the login flow and the self password reset; on mismatch the
// stored hash is never touched.
func VerifyPassword(hash, candidate, actor string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) != nil {
		return errs.Unauthorized(actor, "Error on password change")
	}
	return nil
}
