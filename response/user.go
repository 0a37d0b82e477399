package response

import "github.com/michalswider/electronic-gradebook/validation"

const (
	noClassAssigned   = "No class assigned"
	noSubjectAssigned = "No subject assigned"
)

// Student shapes an admin-listing entry for a student account.
func Student(row validation.UserRow) map[string]any {
	class := noClassAssigned
	if row.ClassName != nil {
		class = *row.ClassName
	}
	return map[string]any{
		"id":              row.ID,
		"first_name":      row.FirstName,
		"last_name":       row.LastName,
		"username":        row.Username,
		"hashed_password": row.HashedPassword,
		"date_of_birth":   row.DateOfBirth,
		"class":           class,
		"role":            row.Role,
	}
}

// Teacher shapes an admin-listing entry for a teacher account.
func Teacher(row validation.UserRow) map[string]any {
	subject := noSubjectAssigned
	if row.SubjectName != nil {
		subject = *row.SubjectName
	}
	return map[string]any{
		"id":              row.ID,
		"first_name":      row.FirstName,
		"last_name":       row.LastName,
		"username":        row.Username,
		"hashed_password": row.HashedPassword,
		"subject":         subject,
		"role":            row.Role,
	}
}

func Students(rows []validation.UserRow) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, Student(row))
	}
	return out
}

func Teachers(rows []validation.UserRow) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, Teacher(row))
	}
	return out
}

// Profile is the student panel's own-account view.
func Profile(row validation.UserRow) map[string]any {
	class := noClassAssigned
	if row.ClassName != nil {
		class = *row.ClassName
	}
	return map[string]any{
		"first_name":    row.FirstName,
		"last_name":     row.LastName,
		"username":      row.Username,
		"date_of_birth": row.DateOfBirth,
		"class":         class,
		"role":          row.Role,
	}
}
