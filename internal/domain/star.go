package domain

import "time"

type Star struct {
	ID           uint
	UserID       uint
	RepositoryID uint
	CreatedAt    time.Time
}
