package handlers

import (
	"net/http"

	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type CommitHandler struct {
	commitUsecase usecases.CommitUsecase
}

func NewCommitHandler(commitUsecase usecases.CommitUsecase) *CommitHandler {
	return &CommitHandler{commitUsecase: commitUsecase}
}

// CreateCommit godoc
//
//	@Summary		Record a commit
//	@Description	The hash is generated when omitted.
//	@Tags			commits
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Repository ID"
//	@Param			commit	body		dtos.CommitInput	true	"Commit"
//	@Success		201		{object}	dtos.Commit
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Router			/repositories/{id}/commits [post]
func (h *CommitHandler) CreateCommit(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.CommitInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	commit, err := h.commitUsecase.Create(r.Context(), req.ToDomain(repoID))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.FromCommit(*commit))
}

// GetCommitsByRepository godoc
//
//	@Summary	List the commits of a repository, newest first
//	@Tags		commits
//	@Produce	json
//	@Param		id		path		int	true	"Repository ID"
//	@Param		skip	query		int	false	"Offset"
//	@Param		limit	query		int	false	"Page size (max 100)"
//	@Success	200		{object}	dtos.CommitList
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/repositories/{id}/commits [get]
func (h *CommitHandler) GetCommitsByRepository(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	commits, err := h.commitUsecase.ListByRepository(r.Context(), repoID, paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.CommitList{Commits: dtos.FromCommits(commits.Items), Total: commits.Total})
}

// GetCommit godoc
//
//	@Summary	Get a commit
//	@Tags		commits
//	@Produce	json
//	@Param		id	path		int	true	"Commit ID"
//	@Success	200	{object}	dtos.Commit
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/commits/{id} [get]
func (h *CommitHandler) GetCommit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	commit, err := h.commitUsecase.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromCommit(*commit))
}

// UpdateCommit godoc
//
//	@Summary	Change a commit message
//	@Tags		commits
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Commit ID"
//	@Param		commit	body		dtos.CommitUpdateInput	true	"Fields to change"
//	@Success	200		{object}	dtos.Commit
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/commits/{id} [put]
func (h *CommitHandler) UpdateCommit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.CommitUpdateInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	commit, err := h.commitUsecase.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromCommit(*commit))
}

// DeleteCommit godoc
//
//	@Summary	Delete a commit
//	@Tags		commits
//	@Param		id	path	int	true	"Commit ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/commits/{id} [delete]
func (h *CommitHandler) DeleteCommit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.commitUsecase.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
