package model

// CategoryModel merepresentasikan tabel categories di database.
// Nama kategori dipakai sebagai join key oleh frontend (bukan FK).
type CategoryModel struct {
	CategoryID uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"categoryID"`
	Name       string `gorm:"size:100;unique;not null" json:"name"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
