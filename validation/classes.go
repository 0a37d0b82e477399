package validation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/michalswider/electronic-gradebook/database"
	"github.com/michalswider/electronic-gradebook/errs"
	"github.com/michalswider/electronic-gradebook/models"
)

func ClassExists(id uint, actor string) (*models.Class, error) {
	var class models.Class
	if err := database.DB.First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Exist(actor, "Class with id: %d does not exist", id)
		}
		return nil, err
	}
	return &class, nil
}

// ClassDeletable blocks deletion while any account still references the
// class.
func ClassDeletable(id uint, actor string) error {
	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("class_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.Conflict(actor,
			"Class with id: %d cannot be deleted because it is associated with table: users.", id)
	}
	return nil
}

func SubjectExists(id uint, actor string) (*models.Subject, error) {
	var subject models.Subject
	if err := database.DB.First(&subject, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Exist(actor, "Subject with id: %d does not exist", id)
		}
		return nil, err
	}
	return &subject, nil
}

// SubjectDeletable checks grades, attendance and users in that order; the
// first table with a referencing row blocks the delete.
func SubjectDeletable(id uint, actor string) error {
	checks := []struct {
		table string
		model any
		where string
	}{
		{"grades", &models.Grade{}, "subject_id = ?"},
		{"attendance", &models.Attendance{}, "subject_id = ?"},
		{"users", &models.User{}, "subject_id = ?"},
	}
	for _, check := range checks {
		var count int64
		if err := database.DB.Model(check.model).
			Where(check.where, id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.Conflict(actor,
				"Subject with id: %d cannot be deleted because it is associated with table: %s.", id, check.table)
		}
	}
	return nil
}
