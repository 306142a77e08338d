package user

const (
	SelectUserByCustomerID = `
		SELECT uuid, email, password_hash, type, customer_id, created_at, updated_at
		FROM users
		WHERE customer_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	SelectUserByEmail = `
		SELECT uuid, email, password_hash, type, customer_id, created_at, updated_at
		FROM users
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`
	SelectEmailInUseByRole = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 AND (type = $2 OR type IS NULL) AND uuid <> $3
		)
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, type, customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING uuid, email, password_hash, type, customer_id, created_at, updated_at
	`
	UpdateUserEmailByID = `
		UPDATE users
		SET email = $1,
		    updated_at = now()
		WHERE uuid = $2
		RETURNING uuid, email, password_hash, type, customer_id, created_at, updated_at
	`
	DeleteUsersByCustomerID = `DELETE FROM users WHERE customer_id = $1`
)
