package customer

const (
	SelectCustomers = `
		SELECT uuid, name, surname, phone, photo, created_at, updated_at
		FROM customers
		ORDER BY created_at
	`
	SelectCustomerByID = `
		SELECT uuid, name, surname, phone, photo, created_at, updated_at
		FROM customers
		WHERE uuid = $1
	`
	SelectPhoneInUse = `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE phone = $1 AND uuid <> $2
		)
	`
	InsertCustomer = `
		INSERT INTO customers (name, surname, phone, photo)
		VALUES ($1, $2, $3, $4)
		RETURNING uuid, name, surname, phone, photo, created_at, updated_at
	`
	UpdateCustomerByID = `
		UPDATE customers
		SET name = $1,
		    surname = $2,
		    phone = $3,
		    updated_at = now()
		WHERE uuid = $4
		RETURNING uuid, name, surname, phone, photo, created_at, updated_at
	`
	UpdateCustomerPhotoByID = `
		UPDATE customers
		SET photo = $1,
		    updated_at = now()
		WHERE uuid = $2
	`
	DeleteCustomerByID = `DELETE FROM customers WHERE uuid = $1`
)
