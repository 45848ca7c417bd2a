package httpapi

import (
	"fmt"
	"net/http"

	"github.com/mydreamteam/fantasy-engine/internal/domain/formation"
	"github.com/mydreamteam/fantasy-engine/internal/usecase"
)

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	items := formation.All()
	out := make([]formationDTO, 0, len(items))
	for _, f := range items {
		out = append(out, formationToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	name := r.PathValue("name")
	item, err := formation.ByName(name)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrNotFound, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationToDTO(item))
}
