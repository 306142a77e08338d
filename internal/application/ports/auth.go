package ports

import (
	"github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
)

type Auth interface {
	GenerateToken(u *user.User, requestPassword string) (string, error)
}
