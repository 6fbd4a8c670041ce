package handler

import (
	"net/http"
)

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.ListBoards(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainBoardsToHTTP(boards))
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req CreateBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	board, err := h.boardService.CreateBoard(r.Context(), req.Title, req.TeamID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainBoardToHTTP(board))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardService.GetBoard(r.Context(), r.PathValue("id"), r.URL.Query().Get("userId"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainBoardDetailToHTTP(board))
}

func (h *Handler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	var req CreateColumnRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	column, err := h.boardService.CreateColumn(r.Context(), r.PathValue("id"), req.Title, req.Color)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainColumnToHTTP(column))
}
