package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

type createAuctionRequest struct {
	LeagueID        string `json:"league_id" validate:"required"`
	PlayerID        string `json:"player_id" validate:"required"`
	ReservePrice    int64  `json:"reserve_price" validate:"required,gt=0"`
	DurationMinutes int64  `json:"duration_minutes" validate:"required,gt=0"`
}

type placeBidRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (h *Handler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAuction")
	defer span.End()

	var req createAuctionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.auctionService.CreateAuction(ctx, usecase.CreateAuctionInput{
		LeagueID:     req.LeagueID,
		PlayerID:     req.PlayerID,
		ReservePrice: req.ReservePrice,
		Duration:     time.Duration(req.DurationMinutes) * time.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create auction failed", "league_id", req.LeagueID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, auctionToDTO(created, time.Now()))
}

func (h *Handler) GetAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	item, err := h.auctionService.GetAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(item, time.Now()))
}

func (h *Handler) ListActiveAuctions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActiveAuctions")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	items, err := h.auctionService.GetActive(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list active auctions failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionsToDTO(items, time.Now()))
}

func (h *Handler) ListAuctionHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuctionHistory")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	items, err := h.auctionService.GetHistory(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list auction history failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionsToDTO(items, time.Now()))
}

func (h *Handler) ListMyAuctionHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyAuctionHistory")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.TeamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: %s header is required", usecase.ErrInvalidInput, headerTeamID))
		return
	}

	leagueID := r.PathValue("leagueID")
	items, err := h.auctionService.GetTeamHistory(ctx, leagueID, principal.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team auction history failed", "league_id", leagueID, "team_id", principal.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionsToDTO(items, time.Now()))
}

func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlaceBid")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	if principal.TeamID == "" {
		writeError(ctx, w, fmt.Errorf("%w: %s header is required", usecase.ErrInvalidInput, headerTeamID))
		return
	}

	auctionID := r.PathValue("auctionID")

	var req placeBidRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.auctionService.PlaceBid(ctx, usecase.PlaceBidInput{
		AuctionID: auctionID,
		TeamID:    principal.TeamID,
		TeamName:  principal.TeamName,
		Amount:    req.Amount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "place bid failed", "auction_id", auctionID, "team_id", principal.TeamID, "amount", req.Amount, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(updated, time.Now()))
}

func (h *Handler) CloseAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	updated, err := h.auctionService.CloseAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "close auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(updated, time.Now()))
}

func (h *Handler) CancelAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	updated, err := h.auctionService.CancelAuction(ctx, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel auction failed", "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(updated, time.Now()))
}
