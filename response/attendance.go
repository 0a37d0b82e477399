package response

import "github.com/michalswider/electronic-gradebook/validation"

func AttendanceBySubject(rows []validation.AttendanceRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		grouped[row.SubjectName] = append(grouped[row.SubjectName], map[string]any{
			"id":         row.ID,
			"class_date": row.ClassDate,
			"status":     row.Status,
			"added_by":   row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

// StudentAttendanceBySubject is the student-panel variant: no row ids.
func StudentAttendanceBySubject(rows []validation.AttendanceRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		grouped[row.SubjectName] = append(grouped[row.SubjectName], map[string]any{
			"class_date": row.ClassDate,
			"status":     row.Status,
			"added_by":   row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

// AttendanceByStudent groups a class's attendance on one date under each
// student's "first last" name.
func AttendanceByStudent(rows []validation.AttendanceRow) map[string][]map[string]any {
	grouped := make(map[string][]map[string]any)
	for _, row := range rows {
		name := row.StudentFirstName + " " + row.StudentLastName
		grouped[name] = append(grouped[name], map[string]any{
			"id":         row.ID,
			"class_date": row.ClassDate,
			"status":     row.Status,
			"added_by":   row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return grouped
}

// AttendanceList flattens rows for the per-subject student listing.
func AttendanceList(rows []validation.AttendanceRow) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]any{
			"id":         row.ID,
			"class_date": row.ClassDate,
			"status":     row.Status,
			"added_by":   row.AddedByFirstName + " " + row.AddedByLastName,
		})
	}
	return out
}
