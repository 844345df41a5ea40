package api

import (
	"net/http"
	"slices"
)

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	p, err := h.Index(valueIndex(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := p.List(r.Context(), nil)

	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	chunks := map[string]int{}
	titles := map[string]string{}

	var sources []string

	for _, d := range page.Items {
		if _, ok := chunks[d.Source]; !ok {
			sources = append(sources, d.Source)
		}

		chunks[d.Source]++

		if d.Title != "" {
			titles[d.Source] = d.Title
		}
	}

	slices.Sort(sources)

	result := make([]Document, 0, len(sources))

	for _, source := range sources {
		result = append(result, Document{
			Source: source,

			Title:  titles[source],
			Chunks: chunks[source],
		})
	}

	writeJson(w, result)
}
