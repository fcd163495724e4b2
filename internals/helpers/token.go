package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login atau klaim bukan angka (sesuai perilaku
// endpoint yang butuh identitas pemanggil).
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
	}

	switch t := v.(type) {
	case uint:
		if t == 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
		}
		return uint(id), nil
	case float64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
		}
		return uint(t), nil
	default:
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing user ID.")
	}
}

// Ambil role dari c.Locals("userRole").
func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return role, nil
}
