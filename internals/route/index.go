// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"franquiaedu_backend/internals/configs"
	attendanceRoute "franquiaedu_backend/internals/features/training/attendance/route"
	certificateRoute "franquiaedu_backend/internals/features/training/certificates/route"
	courseRoute "franquiaedu_backend/internals/features/training/courses/route"
	enrollmentRoute "franquiaedu_backend/internals/features/training/enrollments/route"
	progressRoute "franquiaedu_backend/internals/features/training/progress/route"
	turmaRoute "franquiaedu_backend/internals/features/training/turmas/route"
	authRoute "franquiaedu_backend/internals/features/users/auth/route"
	authMiddleware "franquiaedu_backend/internals/middlewares/auth"
	"franquiaedu_backend/internals/services/mailer"
)

// SetupRoutes monta a árvore de rotas:
//
//	/api/auth    - registro/login, sem token
//	/api/public  - leitura sem login (verificação de certificado)
//	/api/u       - aluno logado (catálogo, inscrições, progresso, certificado)
//	/api/a       - instrutor/admin (cada feature aplica o guard de papel)
func SetupRoutes(app *fiber.App, db *gorm.DB, m mailer.Mailer) {
	authRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	certificateRoute.CertificatePublicRoutes(public, db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := app.Group("/api/u", jwt)
	courseRoute.CourseUserRoutes(user, db)
	turmaRoute.TurmaUserRoutes(user, db)
	enrollmentRoute.EnrollmentUserRoutes(user, db, m)
	progressRoute.ProgressUserRoutes(user, db)
	certificateRoute.CertificateUserRoutes(user, db)

	admin := app.Group("/api/a", jwt)
	courseRoute.CourseAdminRoutes(admin, db)
	turmaRoute.TurmaAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db, m)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
}
