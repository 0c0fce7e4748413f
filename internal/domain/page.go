package domain

const (
	DefaultLimit       = 100
	DefaultSearchLimit = 20
	MaxLimit           = 100
)

// Pagination is a skip/limit window.
type Pagination struct {
	Skip  int
	Limit int
}

// Normalize fills a zero limit with def, clamps the limit to [1, MaxLimit]
// and a negative skip to 0.
func (p Pagination) Normalize(def int) Pagination {
	if p.Limit == 0 {
		p.Limit = def
	}
	p.Limit = min(max(p.Limit, 1), MaxLimit)
	p.Skip = max(p.Skip, 0)
	return p
}

// List is one page of results with the total independent of the window.
type List[T any] struct {
	Items []T
	Total int64
}

type SearchType string

const (
	SearchAll          SearchType = "all"
	SearchUsers        SearchType = "users"
	SearchRepositories SearchType = "repositories"
)

type SearchResult struct {
	Users             []User
	UsersTotal        int64
	Repositories      []Repository
	RepositoriesTotal int64
}
