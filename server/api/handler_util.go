package api

import (
	"net/http"
	"strconv"

	"github.com/papyra/papyra/pkg/selection"
)

func valueIndex(r *http.Request) string {
	if val := r.FormValue("index"); val != "" {
		return val
	}

	return ""
}

func valueQuery(r *http.Request) string {
	if val := r.FormValue("query"); val != "" {
		return val
	}

	return ""
}

func valueLimit(r *http.Request) (*int, error) {
	val := r.FormValue("limit")

	if val == "" {
		return nil, nil
	}

	limit, err := strconv.Atoi(val)

	if err != nil {
		return nil, err
	}

	return &limit, nil
}

// valueSources distinguishes "no source parameters" (no filter) from source
// parameters that are present but blank (an explicit empty selection).
func valueSources(r *http.Request) selection.Selection {
	r.ParseForm()

	vals, ok := r.Form["source"]

	if !ok {
		return selection.None()
	}

	ids := make([]string, 0, len(vals))

	for _, val := range vals {
		if val == "" {
			continue
		}

		ids = append(ids, val)
	}

	return selection.Of(ids...)
}
