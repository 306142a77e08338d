package user

import (
	domain "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var typ string
	if model.Type != nil {
		typ = *model.Type
	}

	return &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Type:         typ,
		CustomerID:   model.CustomerID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
