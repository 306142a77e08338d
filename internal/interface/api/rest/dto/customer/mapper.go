package customer

import (
	domainCustomer "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/customer"
	domainUser "github.com/benjamincondori/Api-Asistencia-Tecnica/internal/domain/user"
)

func ToResponseCustomer(c domainCustomer.Customer) Customer {
	return Customer{
		UUID:      c.UUID,
		Name:      c.Name,
		Surname:   c.Surname,
		Phone:     c.Phone,
		Photo:     c.Photo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToResponseCustomers(cs domainCustomer.Customers) Customers {
	out := make(Customers, len(cs))
	for idx, c := range cs {
		out[idx] = ToResponseCustomer(*c)
	}

	return out
}

func ToResponseAccount(u domainUser.User, c domainCustomer.Customer) Account {
	return Account{
		UUID:     u.UUID,
		Email:    u.Email,
		Type:     u.Type,
		Customer: ToResponseCustomer(c),
	}
}

func ToResponseProfile(c domainCustomer.Customer, u domainUser.User) Profile {
	return Profile{
		UUID:      c.UUID,
		Name:      c.Name,
		Surname:   c.Surname,
		Phone:     c.Phone,
		Photo:     c.Photo,
		Email:     u.Email,
		Type:      u.Type,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
