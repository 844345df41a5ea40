package api

import (
	"errors"
	"net/http"

	"github.com/papyra/papyra/pkg/retriever"
)

func (h *Handler) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	p, err := h.Retriever(valueIndex(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	query := valueQuery(r)

	if query == "" {
		writeError(w, http.StatusBadRequest, retriever.ErrInvalidQuery)
		return
	}

	limit, err := valueLimit(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, retriever.ErrInvalidLimit)
		return
	}

	sources := valueSources(r)

	// an explicit empty selection never reaches the index
	if sources.Explicit() {
		if err := sources.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	options := &retriever.RetrieveOptions{
		Limit: limit,

		Sources: sources,
	}

	results, err := p.Retrieve(r.Context(), query, options)

	if err != nil {
		if errors.Is(err, retriever.ErrInvalidQuery) || errors.Is(err, retriever.ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		writeError(w, http.StatusBadGateway, err)
		return
	}

	result := make([]RetrieveResult, 0)

	for _, r := range results {
		chunk := RetrieveResult{
			ID: r.ID,

			Source: r.Source,

			Score:   r.Score,
			Title:   r.Title,
			Content: r.Content,

			Metadata: r.Metadata,
		}

		result = append(result, chunk)
	}

	writeJson(w, result)
}
