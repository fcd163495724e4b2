package model

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	userModel "bytequiz_backend/internals/features/users/auth/model"
)

// AnsweredQuestion adalah satu entri pada payload answered_questions.
// QuestionID wajib; field lain dari client dibiarkan lewat apa adanya.
type AnsweredQuestion struct {
	QuestionID     uint   `json:"questionID"`
	SelectedAnswer string `json:"selectedAnswer,omitempty"`
}

// SubmissionModel merepresentasikan tabel submissions: detail satu
// attempt, termasuk soal mana saja yang dijawab (jsonb).
type SubmissionModel struct {
	SubmissionID      uint           `gorm:"column:submission_id;primaryKey;autoIncrement" json:"submissionId"`
	UserID            uint           `gorm:"column:user_id;not null;index" json:"userId"`
	CategoryID        uint           `gorm:"column:category_id;not null" json:"categoryId"`
	QuizID            uint           `gorm:"column:quiz_id;not null;index" json:"quizId"`
	MarksObtained     int            `gorm:"not null" json:"marksObtained"`
	TotalMarks        int            `gorm:"not null" json:"totalMarks"`
	StartTime         *time.Time     `json:"startTime"`
	EndTime           *time.Time     `json:"endTime"`
	AnsweredQuestions datatypes.JSON `gorm:"type:jsonb;not null" json:"answeredQuestions"`

	User     *userModel.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Category *CategoryModel       `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Quiz     *QuizModel           `gorm:"foreignKey:QuizID;references:QuizID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (SubmissionModel) TableName() string {
	return "submissions"
}

// ------------------------
// Helpers
// ------------------------

// SetAnsweredQuestions memvalidasi lalu menyimpan payload jawaban.
func (m *SubmissionModel) SetAnsweredQuestions(answers []AnsweredQuestion) error {
	if len(answers) == 0 {
		return errors.New("answered questions must not be empty")
	}
	for _, a := range answers {
		if a.QuestionID == 0 {
			return errors.New("every answered question needs a questionID")
		}
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	m.AnsweredQuestions = datatypes.JSON(b)
	return nil
}

// ParseAnsweredQuestions membaca kembali payload jawaban dari jsonb.
func (m *SubmissionModel) ParseAnsweredQuestions() ([]AnsweredQuestion, error) {
	var answers []AnsweredQuestion
	if err := json.Unmarshal(m.AnsweredQuestions, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// AnsweredQuestionIDs mengembalikan himpunan question id yang dijawab.
func (m *SubmissionModel) AnsweredQuestionIDs() ([]uint, error) {
	answers, err := m.ParseAnsweredQuestions()
	if err != nil {
		return nil, err
	}
	seen := make(map[uint]struct{}, len(answers))
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}
	return ids, nil
}
