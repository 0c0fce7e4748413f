package handlers

import (
	"net/http"

	"github.com/just-nibble/codehost/internal/http/dtos"
	"github.com/just-nibble/codehost/internal/usecases"
	"github.com/just-nibble/codehost/pkg/response"
)

type IssueHandler struct {
	issueUsecase usecases.IssueUsecase
}

func NewIssueHandler(issueUsecase usecases.IssueUsecase) *IssueHandler {
	return &IssueHandler{issueUsecase: issueUsecase}
}

// CreateIssue godoc
//
//	@Summary	Open an issue
//	@Tags		issues
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Repository ID"
//	@Param		issue	body		dtos.IssueInput		true	"Issue"
//	@Success	201		{object}	dtos.Issue
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/repositories/{id}/issues [post]
func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	repoID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.IssueInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	issue, err := h.issueUsecase.Create(r.Context(), req.ToDomain(repoID))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, dtos.FromIssue(*issue))
}

// GetIssuesByRepository godoc
//
//	@Summary	List the issues of a repository, newest first
//	@Tags		issues
//	@Produce	json
//	@Param		id		path		int		true	"Repository ID"
//	@Param		status	query		string	false	"open or closed"
//	@Param		skip	query		int		false	"Offset"
//	@Param		limit	query		int		false	"Page size (max 100)"
//	@Success	200		{object}	dtos.IssueList
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/repositories/{id}/issues [get]
func (h *IssueHandler) GetIssuesByRepository(w http.ResponseWriter, r *http.Request) {
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

	issues, err := h.issueUsecase.ListByRepository(r.Context(), repoID, r.URL.Query().Get("status"), paging.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.IssueList{Issues: dtos.FromIssues(issues.Items), Total: issues.Total})
}

// GetIssue godoc
//
//	@Summary	Get an issue
//	@Tags		issues
//	@Produce	json
//	@Param		id	path		int	true	"Issue ID"
//	@Success	200	{object}	dtos.Issue
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/issues/{id} [get]
func (h *IssueHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	issue, err := h.issueUsecase.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromIssue(*issue))
}

// UpdateIssue godoc
//
//	@Summary	Update an issue
//	@Tags		issues
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Issue ID"
//	@Param		issue	body		dtos.IssueUpdateInput	true	"Fields to change"
//	@Success	200		{object}	dtos.Issue
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/issues/{id} [put]
func (h *IssueHandler) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	var req dtos.IssueUpdateInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	issue, err := h.issueUsecase.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, dtos.FromIssue(*issue))
}

// DeleteIssue godoc
//
//	@Summary	Delete an issue
//	@Tags		issues
//	@Param		id	path	int	true	"Issue ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/issues/{id} [delete]
func (h *IssueHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.issueUsecase.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}
