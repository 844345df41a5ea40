package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/papyra/papyra/pkg/selection"
	"github.com/papyra/papyra/server/api"
)

type RetrievalService struct {
	Options []RequestOption
}

func NewRetrievalService(opts ...RequestOption) RetrievalService {
	return RetrievalService{
		Options: opts,
	}
}

type RetrieveResult = api.RetrieveResult

type RetrievalRequest struct {
	Index string

	Query string
	Limit *int

	Selection selection.Selection
}

func (r *RetrievalService) New(ctx context.Context, input RetrievalRequest, opts ...RequestOption) ([]RetrieveResult, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	// gate: an explicit selection must name at least one document before
	// anything goes on the wire
	if input.Selection.Explicit() {
		if err := input.Selection.Validate(); err != nil {
			return nil, err
		}
	}

	data := url.Values{}
	data.Set("query", input.Query)

	if input.Index != "" {
		data.Set("index", input.Index)
	}

	if input.Limit != nil {
		data.Set("limit", strconv.Itoa(*input.Limit))
	}

	for _, id := range input.Selection.IDs() {
		data.Add("source", id)
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/v1/retrieve", strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result []RetrieveResult

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
