package seeds

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	quizModel "bytequiz_backend/internals/features/quiz/model"
)

// CategorySeed adalah format file seed: kategori beserta soal awalnya.
type CategorySeed struct {
	Name      string `json:"name"`
	Questions []struct {
		QuestionText  string   `json:"questionText"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
	} `json:"questions"`
}

// Run membaca file JSON dan menanam kategori (plus soal) yang belum ada.
// Idempotent: kategori yang sudah ada dilewati seluruhnya.
func Run(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file seed:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file seed: %v", err)
		return
	}

	var seeds []CategorySeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON seed: %v", err)
		return
	}

	for _, seed := range seeds {
		var existing quizModel.CategoryModel
		err := db.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Printf("❌ Gagal cek kategori %q: %v", seed.Name, err)
			continue
		}

		category := quizModel.CategoryModel{Name: seed.Name}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("❌ Gagal insert kategori %q: %v", seed.Name, err)
			continue
		}

		for _, q := range seed.Questions {
			question := quizModel.QuestionModel{
				CategoryID:    category.CategoryID,
				QuestionText:  q.QuestionText,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			}
			if err := db.Create(&question).Error; err != nil {
				log.Printf("❌ Gagal insert soal untuk %q: %v", seed.Name, err)
			}
		}
		log.Printf("✅ Seeded kategori %q (%d soal)", seed.Name, len(seed.Questions))
	}
}
