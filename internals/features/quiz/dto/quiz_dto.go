// file: internals/features/quiz/dto/quiz_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	model "bytequiz_backend/internals/features/quiz/model"
)

/* ==============================
   Requests
============================== */

// QuizRequest adalah body POST /record/quizzies/submission.
type QuizRequest struct {
	CategoryName  string     `json:"categoryName"`
	MarksObtained int        `json:"marksObtained"`
	TotalMarks    int        `json:"totalMarks"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	UserID        uint       `json:"userId"`
}

// SubmissionRequest adalah body POST /record/submission.
// AnsweredQuestions diterima mentah lalu divalidasi lewat
// ParseAnsweredQuestions (kontrak lama mengirimnya sebagai string JSON).
type SubmissionRequest struct {
	UserID            uint            `json:"userId"`
	CategoryID        uint            `json:"categoryID"`
	QuizID            uint            `json:"quizID"`
	MarksObtained     int             `json:"marksObtained"`
	TotalMarks        int             `json:"totalMarks"`
	StartTime         *time.Time      `json:"startTime"`
	EndTime           *time.Time      `json:"endTime"`
	AnsweredQuestions json.RawMessage `json:"answeredQuestions"`
}

// AddQuestionRequest adalah body POST /add-quizzes/catName.
// Options diterima mentah: kontrak lama mengirim string JSON
// ("[\"3\",\"4\"]"), client baru boleh mengirim array langsung.
type AddQuestionRequest struct {
	QuestionText  string          `json:"questionText"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
}

// EditQuestionRequest adalah body POST /edit-quizzes/catName.
type EditQuestionRequest struct {
	QuestionID    int             `json:"questionID"`
	QuestionText  string          `json:"questionText"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
}

/* ==============================
   Boundary validators
============================== */

var ErrInvalidOptions = errors.New("options are not a valid JSON list of strings")

// unwrapJSONString membuka satu lapis string JSON ("[...]" -> [...]).
func unwrapJSONString(raw json.RawMessage) json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err == nil {
			return json.RawMessage(inner)
		}
	}
	return raw
}

// ParseOptions memvalidasi payload options menjadi list string bertipe.
func ParseOptions(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidOptions
	}
	var options []string
	if err := json.Unmarshal(unwrapJSONString(raw), &options); err != nil {
		return nil, ErrInvalidOptions
	}
	if len(options) == 0 {
		return nil, ErrInvalidOptions
	}
	return options, nil
}

// ParseAnsweredQuestions memvalidasi payload jawaban menjadi list
// {questionID, ...} bertipe.
func ParseAnsweredQuestions(raw json.RawMessage) ([]model.AnsweredQuestion, error) {
	if len(raw) == 0 {
		return nil, errors.New("answered questions payload is empty")
	}
	var answers []model.AnsweredQuestion
	if err := json.Unmarshal(unwrapJSONString(raw), &answers); err != nil {
		return nil, errors.New("answered questions are not a valid JSON list")
	}
	if len(answers) == 0 {
		return nil, errors.New("answered questions must not be empty")
	}
	for _, a := range answers {
		if a.QuestionID == 0 {
			return nil, errors.New("every answered question needs a questionID")
		}
	}
	return answers, nil
}

/* ==============================
   Responses (projections)
============================== */

// QuizRecordRow: baris join Submission→User→Category (Teacher view).
type QuizRecordRow struct {
	UserName      string `gorm:"column:user_name" json:"userName"`
	CategoryName  string `gorm:"column:category_name" json:"categoryName"`
	QuizID        uint   `gorm:"column:quiz_id" json:"quizID"`
	MarksObtained int    `gorm:"column:marks_obtained" json:"marksObtained"`
	TotalMarks    int    `gorm:"column:total_marks" json:"totalMarks"`
}

// UserQuizRow: riwayat quiz milik caller (Student view).
type UserQuizRow struct {
	QuizID        uint   `gorm:"column:quiz_id" json:"quizID"`
	CategoryName  string `gorm:"column:category_name" json:"categoryName"`
	MarksObtained int    `gorm:"column:marks_obtained" json:"marksObtained"`
	TotalMarks    int    `gorm:"column:total_marks" json:"totalMarks"`
}

// QuestionResponse: soal lengkap per kategori (GET /category).
type QuestionResponse struct {
	QuestionID    uint     `json:"questionID"`
	CategoryName  string   `json:"categoryName"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// QuestionBankRow: proyeksi endpoint admin GET /get-quizzes/catName
// (nama field mengikuti kontrak lama).
type QuestionBankRow struct {
	QuestionID     uint     `json:"questionID"`
	CatName        string   `json:"catName"`
	Quest          string   `json:"quest"`
	Options        []string `json:"options"`
	CorrectOptions string   `json:"correctOptions"`
}

// SubmissionDetailResponse: payload GET /get-record/quizId.
type SubmissionDetailResponse struct {
	SubmissionID      uint                     `json:"submissionId"`
	UserID            uint                     `json:"userId"`
	CategoryID        uint                     `json:"categoryId"`
	QuizID            uint                     `json:"quizId"`
	MarksObtained     int                      `json:"marksObtained"`
	TotalMarks        int                      `json:"totalMarks"`
	StartTime         *time.Time               `json:"startTime"`
	EndTime           *time.Time               `json:"endTime"`
	AnsweredQuestions []model.AnsweredQuestion `json:"answeredQuestions"`
	Questions         []QuestionDetail         `json:"questions"`
}

// QuestionDetail: soal yang direferensikan sebuah submission.
type QuestionDetail struct {
	QuestionID    uint     `json:"questionID"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}
