// Package domain holds the entities of the code host and the inputs and
// patches the use cases accept.
package domain

import "time"

type User struct {
	ID        uint
	Username  string
	Email     string
	Bio       *string
	AvatarURL *string
	CreatedAt time.Time
}

// UserSummary is the owner/author/creator projection embedded in other entities.
type UserSummary struct {
	ID        uint
	Username  string
	AvatarURL *string
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}

type NewUser struct {
	Username  string
	Email     string
	Bio       *string
	AvatarURL *string
}

// UserPatch applies only its non-nil fields. An empty Bio or AvatarURL clears it.
type UserPatch struct {
	Username  *string
	Email     *string
	Bio       *string
	AvatarURL *string
}
