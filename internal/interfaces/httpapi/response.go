package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/mydreamteam/fantasy-engine/internal/domain/auction"
	"github.com/mydreamteam/fantasy-engine/internal/domain/formation"
	"github.com/mydreamteam/fantasy-engine/internal/domain/squad"
	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-engine"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, squad.ErrPlayerNotFound),
		errors.Is(err, auction.ErrAuctionNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, squad.ErrInsufficientBudget):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "insufficientBudget",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, squad.ErrDuplicatePlayer),
		errors.Is(err, squad.ErrPositionLimitExceeded),
		errors.Is(err, squad.ErrSquadFull):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidSquad",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, formation.ErrWrongSquadSize),
		errors.Is(err, formation.ErrInvalidGoalkeeperCount),
		errors.Is(err, formation.ErrInvalidDefenderCount),
		errors.Is(err, formation.ErrInvalidMidfielderCount),
		errors.Is(err, formation.ErrInvalidForwardCount):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidFormation",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, auction.ErrBidTooLow):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "bidTooLow",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, auction.ErrAuctionEnded),
		errors.Is(err, auction.ErrAuctionAlreadyClosed):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "auctionClosed",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, squad.ErrVersionConflict),
		errors.Is(err, auction.ErrVersionConflict):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "versionConflict",
			Status:     "ABORTED",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
