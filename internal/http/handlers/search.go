package handlers

import (
	"net/http"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecases.SearchUsecase
}

func NewSearchHandler(searchUsecase usecases.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search godoc
//
//	@Summary		Search users and public repositories
//	@Description	Case-insensitive substring match on username or bio, and on repository name or description.
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search text"
//	@Param			type	query		string	false	"all, users or repositories"
//	@Param			skip	query		int		false	"Offset"
//	@Param			limit	query		int		false	"Page size (default 20, max 100)"
//	@Success		200		{object}	dtos.SearchResults
//	@Failure		400		{object}	response.ErrorBody
//	@Router			/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	q := r.URL.Query()
	result, err := h.searchUsecase.Search(r.Context(), q.Get("q"), domain.SearchType(q.Get("type")), paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromSearchResult(*result))
}
