package models

// User is a self-service registered user, authenticated by email and
// password. The password field holds a bcrypt hash and is never serialized.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username" validate:"required"`
	Email    string `db:"email" json:"email" validate:"required,email"`
	Password string `db:"password" json:"-"`
}

// Organizer is the privileged identity. Organizers are provisioned out of
// band (see cmd/provision); there is no self-signup endpoint.
type Organizer struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}
