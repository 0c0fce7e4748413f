package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/just-nibble/codehost/internal/domain"
	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type UserHandler struct {
	userUsecase       usecases.UserUsecase
	repositoryUsecase usecases.RepositoryUsecase
}

func NewUserHandler(userUsecase usecases.UserUsecase, repositoryUsecase usecases.RepositoryUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, repositoryUsecase: repositoryUsecase}
}

// CreateUser godoc
//
//	@Summary	Create a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dtos.UserInput	true	"User"
//	@Success	201		{object}	dtos.User
//	@Failure	400		{object}	response.ErrorBody
//	@Router		/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dtos.UserInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	user, err := h.userUsecase.Create(r.Context(), req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.FromUser(*user))
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Param		skip	query		int	false	"Offset"
//	@Param		limit	query		int	false	"Page size (max 100)"
//	@Success	200		{object}	dtos.UserList
//	@Router		/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	users, err := h.userUsecase.List(r.Context(), paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.UserList{Users: dtos.FromUsers(users.Items), Total: users.Total})
}

// GetUser godoc
//
//	@Summary	Get a user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dtos.User
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	user, err := h.userUsecase.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromUser(*user))
}

// GetUserByUsername godoc
//
//	@Summary	Get a user by username
//	@Tags		users
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	dtos.User
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/users/username/{username} [get]
func (h *UserHandler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromUser(*user))
}

// ListUserRepositories godoc
//
//	@Summary	List every repository a user owns
//	@Tags		users
//	@Produce	json
//	@Param		id		path		int	true	"User ID"
//	@Param		skip	query		int	false	"Offset"
//	@Param		limit	query		int	false	"Page size (max 100)"
//	@Success	200		{object}	dtos.RepositoryList
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/users/{id}/repositories [get]
func (h *UserHandler) ListUserRepositories(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging, err := getPagingInfo(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	repos, err := h.repositoryUsecase.List(r.Context(), domain.RepositoryFilter{OwnerID: id}, paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.RepositoryList{Repositories: dtos.FromRepositories(repos.Items), Total: repos.Total})
}

// UpdateUser godoc
//
//	@Summary	Update a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"User ID"
//	@Param		user	body		dtos.UserUpdateInput	true	"Fields to change"
//	@Success	200		{object}	dtos.User
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.UserUpdateInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	user, err := h.userUsecase.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromUser(*user))
}

// DeleteUser godoc
//
//	@Summary	Delete a user with their repositories, commits, issues and stars
//	@Tags		users
//	@Param		id	path	int	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.userUsecase.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
