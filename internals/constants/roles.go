package constants

import "fmt"

const (
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
