// file: internals/features/quiz/route/quiz_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bytequiz_backend/internals/constants"
	controller "bytequiz_backend/internals/features/quiz/controller"
	authMiddleware "bytequiz_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB) {
	quizController := controller.NewQuizController(db)
	questionController := controller.NewQuestionController(db)

	// Semua route quiz butuh token valid
	quiz := app.Group("/api/quiz", authMiddleware.AuthMiddleware())

	// 🔓 Semua role (asal login)
	quiz.Get("/categories", quizController.GetCategories)
	quiz.Get("/category", quizController.GetQuestionsByCategory)
	quiz.Get("/get-record/quizId", quizController.GetQuizRecord)
	quiz.Get("/get-quizzes/catName", questionController.GetQuestionsByCategoryName)
	quiz.Post("/record/quizzies/submission", quizController.RecordQuizAttempt)
	quiz.Post("/record/submission", quizController.RecordSubmission)

	// 🎓 Student only
	quiz.Get("/user",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("riwayat quiz"), constants.StudentOnly...),
		quizController.GetMyQuizzes)

	// 🧑‍🏫 Teacher only
	quiz.Get("/all-quizzes",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("rekap quiz"), constants.TeacherOnly...),
		quizController.GetAllQuizRecords)
	quiz.Post("/add-quizzes/catName",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("bank soal"), constants.TeacherOnly...),
		questionController.AddQuestion)
	quiz.Post("/edit-quizzes/catName",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("bank soal"), constants.TeacherOnly...),
		questionController.EditQuestion)
	quiz.Delete("/delete/quiz/:quizId",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("bank soal"), constants.TeacherOnly...),
		questionController.DeleteQuestion)
}
