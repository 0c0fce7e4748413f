package dtos

type StarResponse struct {
	Message string `json:"message"`
	StarID  uint   `json:"star_id"`
}

type StarCheck struct {
	IsStarred bool `json:"is_starred"`
}

type StarsCount struct {
	RepositoryID uint  `json:"repository_id"`
	StarsCount   int64 `json:"stars_count"`
}
