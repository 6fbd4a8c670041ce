package handler

import (
	"net/http"
)

func (h *Handler) GetAdminOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.adminService.Overview(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainAdminOverviewToHTTP(overview))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.adminService.CreateUser(r.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainUserToHTTP(user))
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, err := h.adminService.UpdateUserRole(r.Context(), r.PathValue("id"), req.Role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.adminService.CreateTeam(r.Context(), req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) SaveMembership(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	membership, err := h.adminService.SaveMembership(r.Context(), req.UserID, req.TeamID, req.Role)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMembershipToHTTP(membership))
}

func (h *Handler) AssignBoardTeam(w http.ResponseWriter, r *http.Request) {
	var req AssignBoardTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	board, err := h.adminService.AssignBoardTeam(r.Context(), r.PathValue("id"), req.TeamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainBoardToHTTP(board))
}
