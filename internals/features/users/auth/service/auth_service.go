package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bytequiz_backend/internals/configs"
	"bytequiz_backend/internals/constants"
	dto "bytequiz_backend/internals/features/users/auth/dto"
	model "bytequiz_backend/internals/features/users/auth/model"
	authRepo "bytequiz_backend/internals/features/users/auth/repository"
	helpers "bytequiz_backend/internals/helpers"
)

var validate = validator.New()

const resetTokenTTL = 15 * time.Minute

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	exists, err := authRepo.EmailExists(db, input.Email)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to check existing email")
	}
	if exists {
		return helpers.Error(c, fiber.StatusBadRequest, "Email already registered.")
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	newUser := model.UserModel{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  passwordHash,
		Role:      input.Role,
	}
	if err := newUser.Validate(); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := authRepo.CreateUser(db, &newUser); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.Error(c, fiber.StatusBadRequest, "Email already registered.")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.Success(c, "User registered successfully", dto.ToUserResponse(&newUser))
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)

	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusBadRequest, "Invalid email or user not found.")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid password.")
	}

	token, err := CreateToken(user)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create access token")
	}

	return helpers.Success(c, "Login successful", fiber.Map{
		"user":  dto.ToUserResponse(user),
		"token": token,
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	user, err := authRepo.FindUserByEmail(db, claimSet.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
		}

		// User belum ada -> buat baru sebagai Student
		first, last := splitFullName(claimSet.Name)
		dummyHash, herr := HashPassword(uuid.NewString())
		if herr != nil {
			return helpers.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		newUser := model.UserModel{
			FirstName: first,
			LastName:  last,
			Email:     claimSet.Email,
			Password:  dummyHash,
			Role:      constants.RoleStudent,
		}
		if cerr := authRepo.CreateUser(db, &newUser); cerr != nil {
			low := strings.ToLower(cerr.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.Error(c, fiber.StatusBadRequest, "Email already registered.")
			}
			return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser
	}

	token, err := CreateToken(user)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create access token")
	}

	return helpers.Success(c, "Login successful", fiber.Map{
		"user":  dto.ToUserResponse(user),
		"token": token,
	})
}

func splitFullName(name string) (string, string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "Google", "User"
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

/* ==========================
   LOGOUT
========================== */

// Logout stateless: token tidak di-invalidate di server, client yang
// membuang tokennya sendiri.
func Logout(c *fiber.Ctx) error {
	log.Println("Logout called")
	return helpers.Success(c, "Logout successful. Please remove the token from your client-side storage.", nil)
}

/* ==========================
   FORGOT / RESET PASSWORD
========================== */

func ForgotPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.ForgotPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	resetToken := uuid.NewString()
	expiry := nowUTC().Add(resetTokenTTL)
	if err := authRepo.SetResetToken(db, user.ID, resetToken, expiry); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to store reset token")
	}

	// Tidak ada mailer: token dikembalikan langsung ke pemanggil.
	return helpers.Success(c, "Reset token issued", fiber.Map{
		"resetToken": resetToken,
		"expiresAt":  expiry,
	})
}

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if user.ResetToken == nil || user.TokenExpiry == nil ||
		*user.ResetToken != input.ResetToken || user.TokenExpiry.Before(nowUTC()) {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid or expired reset token")
	}

	hashedPassword, err := HashPassword(input.NewPassword)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, hashedPassword); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	if err := authRepo.ClearResetToken(db, user.ID); err != nil {
		log.Printf("[WARN] clear reset token: %v", err)
	}

	return helpers.Success(c, "Password reset successfully", nil)
}
