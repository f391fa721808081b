// Package users implements the user collection: registration, login and the
// public profile projection, persisted in a single flat JSON file.
package users

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the projection returned to clients: everything except the
// password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateParams carries the fields stamped onto a new record by Create; id and
// timestamps are allocated by the repository.
type CreateParams struct {
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Bio          string
	Avatar       string
}

// UpdateParams is a shallow merge: nil fields keep the stored value.
type UpdateParams struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Name         *string
	Bio          *string
	Avatar       *string
}
