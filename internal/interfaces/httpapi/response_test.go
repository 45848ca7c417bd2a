package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/formation"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: missing field", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: squad=sq-1", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "auction not found",
			err:        fmt.Errorf("%w: auc-1", auction.ErrAuctionNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unauthorized",
			err:        usecase.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantReason: "unauthorized",
		},
		{
			name:       "insufficient budget",
			err:        fmt.Errorf("%w: cost=14.0", squad.ErrInsufficientBudget),
			wantStatus: http.StatusBadRequest,
			wantReason: "insufficientBudget",
		},
		{
			name:       "duplicate player",
			err:        squad.ErrDuplicatePlayer,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidSquad",
		},
		{
			name:       "squad full",
			err:        squad.ErrSquadFull,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidSquad",
		},
		{
			name:       "formation violation",
			err:        fmt.Errorf("%w: got 2", formation.ErrInvalidGoalkeeperCount),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidFormation",
		},
		{
			name:       "bid too low",
			err:        &auction.BidTooLowError{Minimum: 5_000_001},
			wantStatus: http.StatusBadRequest,
			wantReason: "bidTooLow",
		},
		{
			name:       "auction ended",
			err:        fmt.Errorf("%w: auc-1", auction.ErrAuctionEnded),
			wantStatus: http.StatusConflict,
			wantReason: "auctionClosed",
		},
		{
			name:       "version conflict",
			err:        squad.ErrVersionConflict,
			wantStatus: http.StatusConflict,
			wantReason: "versionConflict",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(t.Context(), tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, mapped.HTTPStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("expected reason %s, got %s", tc.wantReason, mapped.Reason)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(t.Context(), rec, fmt.Errorf("%w: squad=sq-1", usecase.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}

	var envelope googleResponseEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("expected api version %s, got %s", googleAPIVersion, envelope.APIVersion)
	}
	if envelope.Error == nil {
		t.Fatal("expected error body")
	}
	if envelope.Error.Code != http.StatusNotFound || envelope.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
	if len(envelope.Error.Errors) != 1 || envelope.Error.Errors[0].Domain != errorDomain {
		t.Fatalf("unexpected error items: %+v", envelope.Error.Errors)
	}
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(t.Context(), rec, http.StatusCreated, map[string]string{"id": "sq-1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("expected api version %s, got %s", googleAPIVersion, envelope.APIVersion)
	}
	if envelope.Data["id"] != "sq-1" {
		t.Fatalf("unexpected data: %v", envelope.Data)
	}
}

func TestWriteInternalErrorHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeInternalError(t.Context(), rec)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope googleResponseEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Message != "internal server error" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}
