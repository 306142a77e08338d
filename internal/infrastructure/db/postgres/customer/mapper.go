package customer

import (
	domain "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
)

func fromDBModel(model *Customer) *domain.Customer {
	return &domain.Customer{
		UUID:    model.UUID,
		Name:    model.Name,
		Surname: model.Surname,
		Phone:   model.Phone,
		Photo:   model.Photo,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func fromDBModels(models *Customers) domain.Customers {
	cs := make(domain.Customers, len(*models))
	for idx, c := range *models {
		cs[idx] = fromDBModel(c)
	}

	return cs
}
