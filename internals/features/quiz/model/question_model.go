package model

import (
	"github.com/lib/pq"
)

// QuestionModel merepresentasikan tabel questions di database.
// Options disimpan sebagai text[] (list opsi bertipe, bukan string JSON
// bebas); correct answer harus salah satu isi options di sisi pembuat soal.
type QuestionModel struct {
	QuestionID    uint           `gorm:"column:question_id;primaryKey;autoIncrement" json:"questionID"`
	CategoryID    uint           `gorm:"column:category_id;not null;index" json:"categoryID"`
	QuestionText  string         `gorm:"type:text;not null" json:"questionText"`
	Options       pq.StringArray `gorm:"type:text[];not null" json:"options"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correctAnswer"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
