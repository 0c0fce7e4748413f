package handlers

import (
	"net/http"

	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type StarHandler struct {
	starUsecase usecases.StarUsecase
}

func NewStarHandler(starUsecase usecases.StarUsecase) *StarHandler {
	return &StarHandler{starUsecase: starUsecase}
}

func starPath(r *http.Request) (userID, repoID uint, err error) {
	if userID, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if repoID, err = pathID(r, "repository_id"); err != nil {
		return 0, 0, err
	}
	return userID, repoID, nil
}

// StarRepository godoc
//
//	@Summary	Star a repository
//	@Tags		stars
//	@Produce	json
//	@Param		id				path		int	true	"User ID"
//	@Param		repository_id	path		int	true	"Repository ID"
//	@Success	201				{object}	dtos.StarResponse
//	@Failure	400				{object}	response.ErrorBody
//	@Failure	404				{object}	response.ErrorBody
//	@Router		/users/{id}/stars/{repository_id} [post]
func (h *StarHandler) StarRepository(w http.ResponseWriter, r *http.Request) {
	userID, repoID, err := starPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	star, err := h.starUsecase.Star(r.Context(), userID, repoID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.StarResponse{Message: "Repository starred successfully", StarID: star.ID})
}

// UnstarRepository godoc
//
//	@Summary	Remove a star
//	@Tags		stars
//	@Param		id				path	int	true	"User ID"
//	@Param		repository_id	path	int	true	"Repository ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/users/{id}/stars/{repository_id} [delete]
func (h *StarHandler) UnstarRepository(w http.ResponseWriter, r *http.Request) {
	userID, repoID, err := starPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.starUsecase.Unstar(r.Context(), userID, repoID); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

// CheckStarred godoc
//
//	@Summary	Report whether a user starred a repository
//	@Tags		stars
//	@Produce	json
//	@Param		id				path		int	true	"User ID"
//	@Param		repository_id	path		int	true	"Repository ID"
//	@Success	200				{object}	dtos.StarCheck
//	@Router		/users/{id}/stars/{repository_id}/check [get]
func (h *StarHandler) CheckStarred(w http.ResponseWriter, r *http.Request) {
	userID, repoID, err := starPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	starred, err := h.starUsecase.IsStarred(r.Context(), userID, repoID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.StarCheck{IsStarred: starred})
}

// ListStarred godoc
//
//	@Summary	List the repositories a user starred, most recent first
//	@Tags		stars
//	@Produce	json
//	@Param		id		path		int	true	"User ID"
//	@Param		skip	query		int	false	"Offset"
//	@Param		limit	query		int	false	"Page size (max 100)"
//	@Success	200		{object}	dtos.RepositoryList
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/users/{id}/stars [get]
func (h *StarHandler) ListStarred(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	repos, err := h.starUsecase.ListStarred(r.Context(), userID, paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.RepositoryList{Repositories: dtos.FromRepositories(repos.Items), Total: repos.Total})
}

// CountStars godoc
//
//	@Summary	Count the stars of a repository
//	@Tags		stars
//	@Produce	json
//	@Param		id	path		int	true	"Repository ID"
//	@Success	200	{object}	dtos.StarsCount
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/repositories/{id}/stars/count [get]
func (h *StarHandler) CountStars(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	count, err := h.starUsecase.Count(r.Context(), repoID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.StarsCount{RepositoryID: repoID, StarsCount: count})
}
