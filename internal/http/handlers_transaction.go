package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/services"
)

type createTransactionRequest struct {
	RawText         string   `json:"rawText"`
	TransactionType string   `json:"transactionType"`
	Item            string   `json:"item"`
	Amount          *float64 `json:"amount"`
	Date            string   `json:"date"`
	Currency        string   `json:"currency"`
}

// parseDate accepts RFC 3339 timestamps and bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.TransactionType == "" || req.Item == "" || req.Amount == nil {
		respondError(w, http.StatusBadRequest, "transactionType, item, and amount are required")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format")
			return
		}
		date = parsed
	}

	user := UserFromContext(r.Context())
	tx, err := s.transactions.Create(r.Context(), user.ID, services.CreateTransactionInput{
		RawText:  req.RawText,
		Type:     core.TransactionType(req.TransactionType),
		Item:     req.Item,
		Amount:   *req.Amount,
		Date:     date,
		Currency: req.Currency,
	})
	switch {
	case errors.Is(err, core.ErrInvalidType):
		respondError(w, http.StatusBadRequest, "transactionType must be 'sale' or 'expense'")
	case errors.Is(err, core.ErrEmptyItem):
		respondError(w, http.StatusBadRequest, "transactionType, item, and amount are required")
	case errors.Is(err, core.ErrNegativeAmount):
		respondError(w, http.StatusBadRequest, "amount cannot be negative")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not save transaction")
	default:
		respondJSON(w, http.StatusCreated, map[string]any{
			"success":     true,
			"transaction": tx,
		})
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	txs, err := s.transactions.List(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not list transactions")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"count":        len(txs),
		"transactions": txs,
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	err := s.transactions.Delete(r.Context(), user.ID, r.PathValue("id"))
	switch {
	case errors.Is(err, core.ErrNotFound):
		respondError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, core.ErrNotOwner):
		respondError(w, http.StatusForbidden, "Not authorized")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not delete transaction")
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Transaction deleted",
		})
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	summary, err := s.transactions.Summary(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not compute summary")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"summary": summary,
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	analytics, count, err := s.transactions.Analytics(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Could not compute analytics")
		return
	}
	// An empty history responds with an empty object, not zeroed
	// aggregates.
	if count == 0 {
		respondJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"analytics": map[string]any{},
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"analytics": analytics,
	})
}
