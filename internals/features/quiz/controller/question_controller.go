// file: internals/features/quiz/controller/question_controller.go
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

// QuestionController mengelola bank soal per kategori. Beberapa route
// lama menamai soal sebagai "quiz" (delete/quiz/:quizId); path dibiarkan
// demi kompatibilitas client, tetapi semua operasi di sini bekerja pada
// tabel questions.
type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

/* =======================
   GET /api/quiz/get-quizzes/catName?catName=
======================= */

func (qc *QuestionController) GetQuestionsByCategoryName(c *fiber.Ctx) error {
	catName := c.Query("catName")
	if strings.TrimSpace(catName) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Category name is null or empty", "Category name should not be null or empty")
	}

	questions, err := findQuestionsByCategoryName(qc.DB, catName)
	if err != nil {
		log.Printf("[ERROR] questions by catName %q: %v", catName, err)
		return helper.Error(c, fiber.StatusInternalServerError, "An error occurred while retrieving the questions.")
	}

	rows := make([]dto.QuestionBankRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, dto.QuestionBankRow{
			QuestionID:     q.QuestionID,
			CatName:        catName,
			Quest:          q.QuestionText,
			Options:        q.Options,
			CorrectOptions: q.CorrectAnswer,
		})
	}

	// Kontrak lama: hasil kosong dianggap 404, bukan list kosong.
	if len(rows) == 0 {
		return helper.ErrorWithDetails(c, fiber.StatusNotFound, "No quizzes found for the given category name.", nil)
	}

	return helper.Success(c, fmt.Sprintf("Questions retrieved successfully for category name: %s", catName), rows)
}

/* =======================
   POST /api/quiz/add-quizzes/catName?catName= (Teacher)
======================= */

func (qc *QuestionController) AddQuestion(c *fiber.Ctx) error {
	catName := c.Query("catName")
	if strings.TrimSpace(catName) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Category name is null or empty", "Category name should not be null or empty")
	}

	var input dto.AddQuestionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid question data.", "Request body could not be parsed.")
	}

	if strings.TrimSpace(input.QuestionText) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Question text is null or empty", "Question text should not be null or empty")
	}
	if strings.TrimSpace(input.CorrectAnswer) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Correct answer is null or empty", "Correct answer should not be null or empty")
	}
	options, err := dto.ParseOptions(input.Options)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Options are not valid JSON.", "Ensure the options are a valid JSON string.")
	}

	category, err := findCategoryByName(qc.DB, catName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with the name '%s'", catName))
		}
		log.Printf("[ERROR] find category %q: %v", catName, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	question := model.QuestionModel{
		CategoryID:    category.CategoryID,
		QuestionText:  input.QuestionText,
		Options:       options,
		CorrectAnswer: input.CorrectAnswer,
	}
	if err := qc.DB.Create(&question).Error; err != nil {
		log.Printf("[ERROR] insert question: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	return helper.Success(c, "Quiz added successfully", fiber.Map{
		"questionID":    question.QuestionID,
		"categoryName":  category.Name,
		"questionText":  question.QuestionText,
		"correctAnswer": question.CorrectAnswer,
	})
}

/* =======================
   POST /api/quiz/edit-quizzes/catName?catName= (Teacher)
======================= */

func (qc *QuestionController) EditQuestion(c *fiber.Ctx) error {
	catName := c.Query("catName")
	if strings.TrimSpace(catName) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Category name is null or empty", "Category name should not be null or empty")
	}

	var input dto.EditQuestionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid question data.", "Request body could not be parsed.")
	}

	if input.QuestionID <= 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid QuestionID", "QuestionID must be a valid positive integer")
	}
	if strings.TrimSpace(input.QuestionText) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Question text is null or empty", "Question text should not be null or empty")
	}
	if strings.TrimSpace(input.CorrectAnswer) == "" {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Correct answer is null or empty", "Correct answer should not be null or empty")
	}
	options, err := dto.ParseOptions(input.Options)
	if err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Options are not valid JSON.", "Ensure the options are a valid JSON string.")
	}

	category, err := findCategoryByName(qc.DB, catName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Category not found",
				fmt.Sprintf("No category found with the name '%s'", catName))
		}
		log.Printf("[ERROR] find category %q: %v", catName, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	var question model.QuestionModel
	if err := qc.DB.First(&question, uint(input.QuestionID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Question not found",
				fmt.Sprintf("No question found with the ID '%d'", input.QuestionID))
		}
		log.Printf("[ERROR] find question %d: %v", input.QuestionID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	// Semua field mutable diganti, termasuk pindah kategori.
	question.CategoryID = category.CategoryID
	question.QuestionText = input.QuestionText
	question.Options = options
	question.CorrectAnswer = input.CorrectAnswer

	if err := qc.DB.Save(&question).Error; err != nil {
		log.Printf("[ERROR] update question %d: %v", question.QuestionID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	return helper.Success(c, "Quiz updated successfully", fiber.Map{
		"questionID":    question.QuestionID,
		"categoryName":  category.Name,
		"questionText":  question.QuestionText,
		"correctAnswer": question.CorrectAnswer,
	})
}

/* =======================
   DELETE /api/quiz/delete/quiz/:quizId (Teacher)
======================= */

func (qc *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	quizID, err := strconv.Atoi(c.Params("quizId"))
	if err != nil || quizID <= 0 {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid Quiz ID", "Quiz ID must be a valid positive integer")
	}

	var question model.QuestionModel
	if err := qc.DB.First(&question, uint(quizID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.ErrorWithDetails(c, fiber.StatusNotFound, "Quiz not found",
				fmt.Sprintf("No quiz found with the ID '%d'", quizID))
		}
		log.Printf("[ERROR] find question %d: %v", quizID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	if err := qc.DB.Delete(&question).Error; err != nil {
		log.Printf("[ERROR] delete question %d: %v", quizID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error occurred.")
	}

	return helper.Success(c, "Quiz deleted successfully", fiber.Map{
		"quizId": quizID,
	})
}

func findCategoryByName(db *gorm.DB, name string) (*model.CategoryModel, error) {
	var category model.CategoryModel
	if err := db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
