// Package response shapes repository rows into the caller-facing JSON.
// The grouping keys (subject name, "first last" student name, class name)
// are part of the external contract.
package response

import "github.com/michalswider/electronic-gradebook/validation"

// GradesBySubject groups grades under their subject name, recorder shown
// as "first last".
func GradesBySubject(rows []validation.GradeRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		grouped[row.SubjectName] = append(grouped[row.SubjectName], map[string]any{
			"id":       row.ID,
			"grade":    row.Grade,
			"date":     row.Date,
			"added_by": row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

// StudentGradesBySubject is the student-panel variant: no row ids.
func StudentGradesBySubject(rows []validation.GradeRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		grouped[row.SubjectName] = append(grouped[row.SubjectName], map[string]any{
			"grade":    row.Grade,
			"date":     row.Date,
			"added_by": row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

// GradesByStudent groups a class's grades in one subject under each
// student's "first last" name.
func GradesByStudent(rows []validation.GradeRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		name := row.StudentFirstName + " " + row.StudentLastName
		grouped[name] = append(grouped[name], map[string]any{
			"id":       row.ID,
			"grade":    row.Grade,
			"date":     row.Date,
			"added_by": row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

func AverageByClass(className string, average float64) map[string]any {
	return map[string]any{
		"class":         className,
		"average_grade": average,
	}
}
