// file: internals/features/quiz/controller/quiz_controller.go
package controller

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bytequiz_backend/internals/features/quiz/dto"
	model "bytequiz_backend/internals/features/quiz/model"
	helper "bytequiz_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

/* =======================
   GET /api/quiz/categories
======================= */

func (qc *QuizController) GetCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := qc.DB.Find(&categories).Error; err != nil {
		log.Printf("[ERROR] fetch categories: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while fetching categories.")
	}
	return helper.Success(c, "Categories are: ", categories)
}

/* =======================
   GET /api/quiz/all-quizzes (Teacher)
======================= */

func (qc *QuizController) GetAllQuizRecords(c *fiber.Ctx) error {
	var rows []dto.QuizRecordRow
	err := qc.DB.Table("submissions").
		Select("users.first_name || ' ' || users.last_name AS user_name, categories.name AS category_name, submissions.quiz_id, submissions.marks_obtained, submissions.total_marks").
		Joins("JOIN users ON users.id = submissions.user_id").
		Joins("JOIN categories ON categories.category_id = submissions.category_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("[ERROR] all-quizzes join: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while fetching quiz records.")
	}
	return helper.Success(c, "Quiz Records are", rows)
}

/* =======================
   GET /api/quiz/user (Student)
======================= */

func (qc *QuizController) GetMyQuizzes(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []dto.UserQuizRow
	if err := qc.DB.Model(&model.QuizModel{}).
		Select("quiz_id, category_name, marks_obtained, total_marks").
		Where("user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] quizzes for user %d: %v", userID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while fetching quiz records.")
	}

	return helper.Success(c, "Quiz records fetched successfully.", rows)
}

/* =======================
   GET /api/quiz/category?categoryName=
======================= */

func (qc *QuizController) GetQuestionsByCategory(c *fiber.Ctx) error {
	categoryName := c.Query("categoryName")

	questions, err := findQuestionsByCategoryName(qc.DB, categoryName)
	if err != nil {
		log.Printf("[ERROR] questions by category %q: %v", categoryName, err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while fetching questions.")
	}

	result := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, dto.QuestionResponse{
			QuestionID:    q.QuestionID,
			CategoryName:  categoryName,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	return helper.Success(c, "Questions fetched successfully.", result)
}

// findQuestionsByCategoryName memfilter soal lewat join ke categories
// (nama kategori adalah join key, exact match).
func findQuestionsByCategoryName(db *gorm.DB, categoryName string) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := db.
		Joins("JOIN categories ON categories.category_id = questions.category_id").
		Where("categories.name = ?", categoryName).
		Find(&questions).Error
	return questions, err
}

/* =======================
   POST /api/quiz/record/quizzies/submission
======================= */

func (qc *QuizController) RecordQuizAttempt(c *fiber.Ctx) error {
	var input dto.QuizRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid quiz submission data.", "Request body could not be parsed.")
	}

	if input.UserID == 0 || strings.TrimSpace(input.CategoryName) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid quiz submission data.", "User or Category field is missing.")
	}

	quiz := model.QuizModel{
		CategoryName:  input.CategoryName,
		MarksObtained: input.MarksObtained,
		TotalMarks:    input.TotalMarks,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		UserID:        input.UserID,
	}
	if err := qc.DB.Create(&quiz).Error; err != nil {
		log.Printf("[ERROR] record quiz attempt: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while recording the quiz submission.")
	}

	return helper.Success(c, "Quiz submission recorded successfully.", quiz)
}

/* =======================
   POST /api/quiz/record/submission
======================= */

func (qc *QuizController) RecordSubmission(c *fiber.Ctx) error {
	var input dto.SubmissionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid submission data.", "Request body could not be parsed.")
	}

	if input.UserID == 0 || input.CategoryID == 0 || input.QuizID == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid submission data.", "User, Category, or Quiz field is missing.")
	}

	answers, err := dto.ParseAnsweredQuestions(input.AnsweredQuestions)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid submission data.", err.Error())
	}

	submission := model.SubmissionModel{
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		QuizID:        input.QuizID,
		MarksObtained: input.MarksObtained,
		TotalMarks:    input.TotalMarks,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
	}
	if err := submission.SetAnsweredQuestions(answers); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid submission data.", err.Error())
	}

	if err := qc.DB.Create(&submission).Error; err != nil {
		log.Printf("[ERROR] record submission: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while recording the submission.")
	}

	return helper.Success(c, "Quiz submission recorded successfully.", submission)
}

/* =======================
   GET /api/quiz/get-record/quizId?quizId=
======================= */

func (qc *QuizController) GetQuizRecord(c *fiber.Ctx) error {
	quizIDStr := c.Query("quizId")
	quizID, err := strconv.Atoi(quizIDStr)
	if err != nil || quizID == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Quiz Id is null", "Quiz Id should not be null")
	}

	var submission model.SubmissionModel
	if err := qc.DB.Where("quiz_id = ?", quizID).First(&submission).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound,
				fmt.Sprintf("No submissions found for the provided quizId: %d", quizID),
				"No records exist in the submissions table for that quizId")
		}
		log.Printf("[ERROR] fetch submission quiz_id=%d: %v", quizID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while retrieving the submission data.")
	}

	answers, err := submission.ParseAnsweredQuestions()
	if err != nil {
		log.Printf("[ERROR] parse answered questions submission=%d: %v", submission.SubmissionID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while retrieving the submission data.")
	}

	questionIDs, _ := submission.AnsweredQuestionIDs()
	var questions []model.QuestionModel
	if len(questionIDs) > 0 {
		if err := qc.DB.Where("question_id IN ?", questionIDs).Find(&questions).Error; err != nil {
			log.Printf("[ERROR] fetch questions for submission=%d: %v", submission.SubmissionID, err)
			return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while retrieving the submission data.")
		}
	}

	detail := dto.SubmissionDetailResponse{
		SubmissionID:      submission.SubmissionID,
		UserID:            submission.UserID,
		CategoryID:        submission.CategoryID,
		QuizID:            submission.QuizID,
		MarksObtained:     submission.MarksObtained,
		TotalMarks:        submission.TotalMarks,
		StartTime:         submission.StartTime,
		EndTime:           submission.EndTime,
		AnsweredQuestions: answers,
		Questions:         make([]dto.QuestionDetail, 0, len(questions)),
	}
	for _, q := range questions {
		detail.Questions = append(detail.Questions, dto.QuestionDetail{
			QuestionID:    q.QuestionID,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	return helper.Success(c, fmt.Sprintf("Submission data retrieved successfully for quizId: %d", quizID), detail)
}
