package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"userId"`
	FirstName string `gorm:"size:50;not null" json:"firstName" validate:"required,max=50"`
	LastName  string `gorm:"size:50;not null" json:"lastName" validate:"required,max=50"`
	Email     string `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string `gorm:"not null" json:"-" validate:"required,min=6"`
	Role      string `gorm:"type:varchar(20);not null;default:'Student'" json:"role" validate:"required,oneof=Student Teacher"`

	// Pasangan reset password (nullable, hanya terisi selama flow reset)
	ResetToken  *string    `gorm:"size:64" json:"-"`
	TokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "Student"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required.")
		case "email":
			messages = append(messages, "Invalid email format.")
		case "min":
			messages = append(messages, fieldErr.Field()+" must be at least "+fieldErr.Param()+" characters long.")
		case "max":
			messages = append(messages, fieldErr.Field()+" must be shorter than "+fieldErr.Param()+" characters.")
		case "oneof":
			messages = append(messages, fieldErr.Field()+" must be one of: "+fieldErr.Param()+".")
		default:
			messages = append(messages, fieldErr.Field()+" has an invalid format.")
		}
	}
	return errors.New(strings.Join(messages, " "))
}
