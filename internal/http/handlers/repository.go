package handlers

import (
	"net/http"

	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type RepositoryHandler struct {
	repositoryUsecase usecases.RepositoryUsecase
}

func NewRepositoryHandler(repositoryUsecase usecases.RepositoryUsecase) *RepositoryHandler {
	return &RepositoryHandler{repositoryUsecase: repositoryUsecase}
}

// AddRepository godoc
//
//	@Summary	Create a repository
//	@Tags		repositories
//	@Accept		json
//	@Produce	json
//	@Param		repository	body		dtos.RepositoryInput	true	"Repository"
//	@Success	201			{object}	dtos.Repository
//	@Failure	400			{object}	response.ErrorBody
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/repositories [post]
func (rh RepositoryHandler) AddRepository(w http.ResponseWriter, r *http.Request) {
	var req dtos.RepositoryInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	repo, err := rh.repositoryUsecase.Create(r.Context(), req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.FromRepository(*repo))
}

// FetchAllRepositories godoc
//
//	@Summary		List repositories
//	@Description	Public repositories, or every repository of owner_id when given.
//	@Tags			repositories
//	@Produce		json
//	@Param			owner_id	query		int	false	"Owner user ID"
//	@Param			skip		query		int	false	"Offset"
//	@Param			limit		query		int	false	"Page size (max 100)"
//	@Success		200			{object}	dtos.RepositoryList
//	@Failure		404			{object}	response.ErrorBody
//	@Router			/repositories [get]
func (rh RepositoryHandler) FetchAllRepositories(w http.ResponseWriter, r *http.Request) {
	ownerID, err := queryID(r, "owner_id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	repos, err := rh.repositoryUsecase.List(r.Context(), domain.RepositoryFilter{OwnerID: ownerID}, paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.RepositoryList{Repositories: dtos.FromRepositories(repos.Items), Total: repos.Total})
}

// FetchRepository godoc
//
//	@Summary	Get a repository
//	@Tags		repositories
//	@Produce	json
//	@Param		id	path		int	true	"Repository ID"
//	@Success	200	{object}	dtos.Repository
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/repositories/{id} [get]
func (rh RepositoryHandler) FetchRepository(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	repo, err := rh.repositoryUsecase.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromRepository(*repo))
}

// UpdateRepository godoc
//
//	@Summary	Update a repository
//	@Tags		repositories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int							true	"Repository ID"
//	@Param		repository	body		dtos.RepositoryUpdateInput	true	"Fields to change"
//	@Success	200			{object}	dtos.Repository
//	@Failure	400			{object}	response.ErrorBody
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/repositories/{id} [put]
func (rh RepositoryHandler) UpdateRepository(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.RepositoryUpdateInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	repo, err := rh.repositoryUsecase.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromRepository(*repo))
}

// DeleteRepository godoc
//
//	@Summary	Delete a repository with its commits, issues and stars
//	@Tags		repositories
//	@Param		id	path	int	true	"Repository ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/repositories/{id} [delete]
func (rh RepositoryHandler) DeleteRepository(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := rh.repositoryUsecase.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
