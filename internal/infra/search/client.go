// Package search queries the public product search API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"curator/config"
	deliverycontext "curator/internal/delivery/context"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"
	"curator/internal/errors"
)

const productsPath = "/products/"

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a product search client for cfg.Relevance.SearchBaseURL.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.ProductSearcher, error) {
	if cfg.Relevance == nil || strings.TrimSpace(cfg.Relevance.SearchBaseURL) == "" {
		return nil, errors.New("search base URL is required")
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.Relevance.SearchBaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Relevance.Timeout},
		logger:     logger,
	}, nil
}

type searchResponse struct {
	Results []resultDTO `json:"results"`
}

type resultDTO struct {
	ProductID    int64      `json:"product_id"`
	Title        string     `json:"title"`
	JobFunctions []facetDTO `json:"job_functions"`
	Industries   []facetDTO `json:"industries"`
	Locations    []facetDTO `json:"locations"`
}

// facetDTO accepts both name keys; locations carry canonical_name.
type facetDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	CanonicalName string `json:"canonical_name"`
}

func toFacets(dtos []facetDTO) []entity.Facet {
	facets := make([]entity.Facet, 0, len(dtos))
	for _, d := range dtos {
		name := d.Name
		if name == "" {
			name = d.CanonicalName
		}
		facets = append(facets, entity.Facet{ID: d.ID, Name: name})
	}

	return facets
}

// Search runs one search the way the job-board frontend does and keeps the ranking.
func (c *client) Search(ctx context.Context, query entity.SearchCase, limit int) ([]entity.SearchResult, error) {
	params := url.Values{}
	params.Set("includeLocationId", strconv.FormatInt(query.Location.ID, 10))
	params.Set("jobFunctionId", strconv.FormatInt(query.JobFunction.ID, 10))
	params.Set("industryId", strconv.FormatInt(query.Industry.ID, 10))
	params.Set("limit", strconv.Itoa(limit))

	searchURL := c.baseURL + productsPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Searching products", slog.String("url", searchURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrSearchFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrSearchFailed.WithDetails(fmt.Sprintf("status %d", resp.StatusCode))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode search response")
	}

	results := make([]entity.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		results = append(results, entity.SearchResult{
			ProductID:    r.ProductID,
			Title:        r.Title,
			JobFunctions: toFacets(r.JobFunctions),
			Industries:   toFacets(r.Industries),
			Locations:    toFacets(r.Locations),
		})
	}

	return results, nil
}
