package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/mydreamteam/fantasy-engine/internal/domain/player"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

type createSquadRequest struct {
	LeagueID   string `json:"league_id" validate:"required"`
	LeagueName string `json:"league_name" validate:"omitempty,max=100"`
	TeamName   string `json:"team_name" validate:"required,max=30"`
}

type updateTeamNameRequest struct {
	TeamName string `json:"team_name" validate:"required,max=30"`
}

type addSquadPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type transferPlayerRequest struct {
	PlayerOutID string `json:"player_out_id" validate:"required"`
	PlayerInID  string `json:"player_in_id" validate:"required"`
}

type setCaptainRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSquad")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createSquadRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.squadService.CreateSquad(ctx, usecase.CreateSquadInput{
		UserID:     principal.UserID,
		LeagueID:   req.LeagueID,
		LeagueName: req.LeagueName,
		TeamName:   req.TeamName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create squad failed", "user_id", principal.UserID, "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, squadToDTO(created))
}

func (h *Handler) GetMySquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMySquad")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.URL.Query().Get("league_id"))
	item, err := h.squadService.GetUserSquad(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get my squad failed", "user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquad")
	defer span.End()

	squadID := r.PathValue("squadID")
	item, err := h.squadService.GetSquad(ctx, squadID)
	if err != nil {
		h.logger.WarnContext(ctx, "get squad failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(item))
}

func (h *Handler) UpdateTeamName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeamName")
	defer span.End()

	squadID := r.PathValue("squadID")

	var req updateTeamNameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.squadService.UpdateTeamName(ctx, squadID, req.TeamName)
	if err != nil {
		h.logger.WarnContext(ctx, "update team name failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) AddSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSquadPlayer")
	defer span.End()

	squadID := r.PathValue("squadID")

	var req addSquadPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.resolveCatalogPlayer(ctx, squadID, req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.squadService.AddPlayer(ctx, squadID, entry)
	if err != nil {
		h.logger.WarnContext(ctx, "add squad player failed", "squad_id", squadID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) RemoveSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSquadPlayer")
	defer span.End()

	squadID := r.PathValue("squadID")
	playerID := r.PathValue("playerID")

	updated, err := h.squadService.RemovePlayer(ctx, squadID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove squad player failed", "squad_id", squadID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) TransferSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TransferSquadPlayer")
	defer span.End()

	squadID := r.PathValue("squadID")

	var req transferPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.squadService.GetSquad(ctx, squadID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerOut, ok := rosteredPlayer(current, req.PlayerOutID)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: %s", squad.ErrPlayerNotFound, req.PlayerOutID))
		return
	}

	catalogIn, err := h.playerService.GetPlayer(ctx, current.LeagueID, req.PlayerInID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, record, err := h.squadService.TransferPlayer(ctx, squadID, playerOut, catalogToRosterPlayer(catalogIn))
	if err != nil {
		h.logger.WarnContext(ctx, "transfer failed", "squad_id", squadID, "player_out", req.PlayerOutID, "player_in", req.PlayerInID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"squad":    squadToDTO(updated),
		"transfer": transferToDTO(record),
	})
}

func (h *Handler) SetSquadCaptain(w http.ResponseWriter, r *http.Request) {
	h.setCaptain(w, r, false, "httpapi.Handler.SetSquadCaptain")
}

func (h *Handler) SetSquadViceCaptain(w http.ResponseWriter, r *http.Request) {
	h.setCaptain(w, r, true, "httpapi.Handler.SetSquadViceCaptain")
}

func (h *Handler) setCaptain(w http.ResponseWriter, r *http.Request, asVice bool, spanName string) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	squadID := r.PathValue("squadID")

	var req setCaptainRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var (
		updated squad.Squad
		err     error
	)
	if asVice {
		updated, err = h.squadService.SetViceCaptain(ctx, squadID, req.PlayerID)
	} else {
		updated, err = h.squadService.SetCaptain(ctx, squadID, req.PlayerID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "set captain failed", "squad_id", squadID, "player_id", req.PlayerID, "as_vice", asVice, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) GetSquadStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSquadStats")
	defer span.End()

	squadID := r.PathValue("squadID")
	stats, err := h.squadService.GetSquadStats(ctx, squadID)
	if err != nil {
		h.logger.WarnContext(ctx, "get squad stats failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}

func (h *Handler) ListSquadTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquadTransfers")
	defer span.End()

	squadID := r.PathValue("squadID")

	var (
		transfers []squad.Transfer
		err       error
	)
	if rawLimit := strings.TrimSpace(r.URL.Query().Get("limit")); rawLimit != "" {
		limit, parseErr := strconv.Atoi(rawLimit)
		if parseErr != nil || limit <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		transfers, err = h.squadService.GetLatestTransfers(ctx, squadID, limit)
	} else {
		transfers, err = h.squadService.GetTransferHistory(ctx, squadID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers failed", "squad_id", squadID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transfersToDTO(transfers))
}

func (h *Handler) ValidateSquadFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateSquadFormation")
	defer span.End()

	squadID := r.PathValue("squadID")
	item, err := h.squadService.GetSquad(ctx, squadID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result := map[string]any{"valid": true}
	if err := h.squadService.ValidateFormation(ctx, item.Starters); err != nil {
		result["valid"] = false
		result["violation"] = err.Error()
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// resolveCatalogPlayer looks the player up in the catalog of the
// squad's league and converts it to a roster entry.
func (h *Handler) resolveCatalogPlayer(ctx context.Context, squadID, playerID string) (squad.RosterPlayer, error) {
	current, err := h.squadService.GetSquad(ctx, squadID)
	if err != nil {
		return squad.RosterPlayer{}, err
	}

	entry, err := h.playerService.GetPlayer(ctx, current.LeagueID, playerID)
	if err != nil {
		return squad.RosterPlayer{}, err
	}

	return catalogToRosterPlayer(entry), nil
}

func catalogToRosterPlayer(p player.Player) squad.RosterPlayer {
	return squad.RosterPlayer{
		ID:          p.ID,
		Name:        p.Name,
		Team:        p.Team,
		Position:    p.Position,
		MarketValue: p.MarketValue,
	}
}

func rosteredPlayer(s squad.Squad, playerID string) (squad.RosterPlayer, bool) {
	for _, p := range s.Starters {
		if p.ID == playerID {
			return p, true
		}
	}
	for _, p := range s.Bench {
		if p.ID == playerID {
			return p, true
		}
	}

	return squad.RosterPlayer{}, false
}

func decodeBody(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
