package dtos

import "github.com/just-nibble/codehost/internal/domain"

type SearchResults struct {
	Users             []User       `json:"users"`
	UsersTotal        int64        `json:"users_total"`
	Repositories      []Repository `json:"repositories"`
	RepositoriesTotal int64        `json:"repositories_total"`
}

func FromSearchResult(r domain.SearchResult) SearchResults {
	return SearchResults{
		Users:             FromUsers(r.Users),
		UsersTotal:        r.UsersTotal,
		Repositories:      FromRepositories(r.Repositories),
		RepositoriesTotal: r.RepositoriesTotal,
	}
}
