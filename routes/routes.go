package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/config"
	"github.com/michalswider/electronic-gradebook/handlers"
	"github.com/michalswider/electronic-gradebook/middlewares"
	"github.com/michalswider/electronic-gradebook/models"
)

// Register wires all HTTP routes. The identity gate runs on every request;
// role checks are group middleware, never inline in handlers.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg)
	users := handlers.NewUserHandler()
	classes := handlers.NewClassHandler()
	subjects := handlers.NewSubjectHandler()
	grades := handlers.NewGradeHandler()
	att := handlers.NewAttendanceHandler()
	panel := handlers.NewStudentPanelHandler()

	e.Use(middlewares.AttachIdentity(cfg.JWTSecret))

	// ===== Public =====
	e.POST("/auth/token", auth.Token)

	// ===== Admin =====
	admin := e.Group("/admin", middlewares.RequireRoles(models.RoleAdmin))

	admin.POST("/add-user", users.Create)
	admin.GET("/students", users.ListStudents)
	admin.GET("/teachers", users.ListTeachers)
	admin.PUT("/edit-user", users.Edit)
	admin.DELETE("/delete-user/:id", users.Delete)

	admin.POST("/classes", classes.Create)
	admin.GET("/classes", classes.List)
	admin.PUT("/classes/:id", classes.Update)
	admin.DELETE("/classes/:id", classes.Delete)

	admin.POST("/subjects", subjects.Create)
	admin.GET("/subjects", subjects.List)
	admin.PUT("/subjects/:id", subjects.Update)
	admin.DELETE("/subjects/:id", subjects.Delete)

	// ===== Teacher (admins included) =====
	teacher := e.Group("/teacher", middlewares.RequireRoles(models.RoleAdmin, models.RoleTeacher))

	teacher.POST("/grades/add-grade", grades.Add)
	teacher.GET("/grades/:studentId", grades.ListForStudent)
	teacher.GET("/grades/class/:classId/subject/:subjectId", grades.ListForClassSubject)
	teacher.GET("/grades/average/subject/:subjectId", grades.AverageForSubject)
	teacher.GET("/grades/average/class/:classId", grades.AverageForClass)
	teacher.PUT("/grades/:studentId", grades.Edit)
	teacher.DELETE("/grades/:studentId/:subjectId/:gradeId", grades.Delete)

	teacher.POST("/add-attendance", att.Add)
	teacher.GET("/show-student-attendance/:studentId", att.ListForStudent)
	teacher.GET("/attendance/class/:classId/date", att.ListForClassOnDate)
	teacher.GET("/attendance/subject/:subjectId/student/:studentId", att.ListForStudentInSubject)
	teacher.PUT("/edit-attendance/:studentId/:subjectId/:attendanceId", att.EditStatus)
	teacher.DELETE("/delete-attendance/:studentId/:subjectId/:attendanceId", att.Delete)

	// ===== Student panel (own records only) =====
	student := e.Group("/student", middlewares.RequireRoles(models.RoleAdmin, models.RoleStudent))

	student.GET("/profile", panel.Profile)
	student.PUT("/reset-password", panel.ResetPassword)
	student.GET("/grades", panel.Grades)
	student.GET("/attendance", panel.Attendance)
}
