package domain

import "time"

type User struct {
	Email     string    `db:"email"`
	Password  string    `db:"password"` // bcrypt hashed
	Admin     bool      `db:"admin"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewUser(email, hashedPassword string, admin bool) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
