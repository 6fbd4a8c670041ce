package handler

import (
	"net/http"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), r.PathValue("id"), httpTaskDraftToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), r.PathValue("id"), httpTaskPatchToDomain(req))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
