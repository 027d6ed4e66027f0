package constants

import "fmt"

const (
	RoleAluno     = "aluno"
	RoleInstrutor = "instrutor"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
)

// Mensagens padrão de erro de permissão
const (
	ErrOnlyAdminsCanAccess      = "❌ Apenas admin ou owner podem acessar %s."
	ErrOnlyInstrutoresCanAccess = "❌ Apenas instrutor, admin ou owner podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorInstrutor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstrutoresCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAluno,
		RoleInstrutor,
		RoleAdmin,
		RoleOwner,
	}

	InstrutorAndAbove = []string{
		RoleInstrutor,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)

func RoleIn(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
