package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lms-api/internal/middleware"
	"github.com/noah-isme/lms-api/internal/models"
)

// Handlers groups the HTTP handlers mounted under the API prefix.
type Handlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	Scheduling *SchedulingHandler
	Class      *ClassHandler
	User       *UserHandler
}

// RegisterRoutes mounts the public login route and the role-scoped API on api.
func RegisterRoutes(api *gin.RouterGroup, tokens middleware.TokenValidator, h Handlers) {
	api.POST("/auth/login", h.Auth.Login)

	admin := middleware.RequireRoles(models.RoleAdministrator)
	professor := middleware.RequireRoles(models.RoleProfessor, models.RoleAdministrator)
	student := middleware.RequireRoles(models.RoleStudent)

	authed := api.Group("")
	authed.Use(middleware.JWT(tokens))

	authed.GET("/departments", h.Catalog.Departments)
	authed.GET("/catalog", h.Catalog.Catalog)
	authed.GET("/departments/:subject/courses", h.Catalog.Courses)
	authed.GET("/departments/:subject/professors", admin, h.Catalog.Professors)
	authed.GET("/courses/:subject/:number/classes", h.Catalog.ClassOfferings)
	authed.GET("/users/:uid", h.Catalog.User)

	authed.POST("/courses", admin, h.Scheduling.CreateCourse)
	authed.POST("/classes", admin, h.Scheduling.CreateClassOffering)

	authed.GET("/professors/:uid/classes", middleware.RBAC(string(models.RoleAdministrator), middleware.Self), h.User.ProfessorClasses)
	authed.GET("/students/:uid/classes", middleware.RBAC(string(models.RoleAdministrator), middleware.Self), h.User.StudentClasses)
	authed.GET("/students/:uid/gpa", middleware.RBAC(string(models.RoleAdministrator), string(models.RoleProfessor), middleware.Self), h.User.GPA)

	professorOrSelf := middleware.RBAC(string(models.RoleAdministrator), string(models.RoleProfessor), middleware.Self)

	class := authed.Group("/classes/:subject/:number/:season/:year")
	class.GET("/roster", professor, h.Class.Roster)
	class.GET("/roster/export", professor, h.Class.ExportRoster)
	class.GET("/categories", professor, h.Class.Categories)
	class.POST("/categories", professor, h.Class.CreateCategory)
	class.GET("/assignments", professor, h.Class.Assignments)
	class.POST("/assignments", professor, h.Class.CreateAssignment)
	class.POST("/enrollments", middleware.RequireRoles(models.RoleStudent, models.RoleAdministrator), h.Class.Enroll)
	class.GET("/students/:uid/assignments", professorOrSelf, h.Class.StudentAssignments)
	class.GET("/students/:uid/grade", professorOrSelf, h.Class.StudentGrade)

	assignment := class.Group("/categories/:category/assignments/:assignment")
	assignment.GET("", h.Catalog.AssignmentContents)
	assignment.GET("/submissions", professor, h.Class.Submissions)
	assignment.POST("/submissions", student, h.Class.Submit)
	assignment.GET("/submissions/:uid", professorOrSelf, h.Catalog.SubmissionText)
	assignment.PUT("/submissions/:uid/score", professor, h.Class.GradeSubmission)
}
