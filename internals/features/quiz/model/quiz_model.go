package model

import (
	"time"

	userModel "bytequiz_backend/internals/features/users/auth/model"
)

// QuizModel merepresentasikan tabel quizzes: satu attempt user terhadap
// sebuah kategori. CategoryName sengaja denormalized (string, bukan FK)
// mengikuti kontrak frontend.
type QuizModel struct {
	QuizID        uint       `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quizID"`
	CategoryName  string     `gorm:"size:100;not null" json:"categoryName"`
	MarksObtained int        `gorm:"not null" json:"marksObtained"`
	TotalMarks    int        `gorm:"not null" json:"totalMarks"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	UserID        uint       `gorm:"column:user_id;not null;index" json:"userId"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
