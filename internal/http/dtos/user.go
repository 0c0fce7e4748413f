package dtos

import (
	"time"

	"github.com/just-nibble/codehost/internal/domain"
)

type UserInput struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (in UserInput) ToDomain() domain.NewUser {
	return domain.NewUser{Username: in.Username, Email: in.Email, Bio: in.Bio, AvatarURL: in.AvatarURL}
}

// UserUpdateInput leaves absent fields untouched. An empty bio or
// avatar_url clears it.
type UserUpdateInput struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (in UserUpdateInput) ToDomain() domain.UserPatch {
	return domain.UserPatch{Username: in.Username, Email: in.Email, Bio: in.Bio, AvatarURL: in.AvatarURL}
}

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is embedded as owner, author or creator.
type UserSummary struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type UserList struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}

func FromUser(u domain.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func FromUsers(users []domain.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

func fromSummary(s *domain.UserSummary) *UserSummary {
	if s == nil {
		return nil
	}
	return &UserSummary{ID: s.ID, Username: s.Username, AvatarURL: s.AvatarURL}
}
