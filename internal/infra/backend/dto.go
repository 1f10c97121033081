package backend

import (
	"curator/internal/domain/entity"
)

type locationsResponse struct {
	Locations []locationDTO `json:"locations"`
}

type locationDTO struct {
	ID                  int64     `json:"id"`
	MapboxID            *string   `json:"mapbox_id"`
	CanonicalName       string    `json:"canonical_name"`
	ParentMapboxID      *string   `json:"mapbox_within__mapbox_id"`
	ParentCanonicalName *string   `json:"mapbox_within__canonical_name"`
	Approved            bool      `json:"approved"`
	Context             []string  `json:"mapbox_context"`
	BoundingBox         []float64 `json:"mapbox_bounding_box"`
}

func (d *locationDTO) toDomain() entity.Location {
	return entity.Location{
		ID:             d.ID,
		MapboxID:       deref(d.MapboxID),
		CanonicalName:  d.CanonicalName,
		ParentMapboxID: deref(d.ParentMapboxID),
		ParentName:     deref(d.ParentCanonicalName),
		Approved:       d.Approved,
		Context:        d.Context,
		BoundingBox:    d.BoundingBox,
	}
}

type productsResponse struct {
	Boards []productDTO `json:"boards"`
}

type productDTO struct {
	ID       int64            `json:"id"`
	Title    *string          `json:"title"`
	Category *string          `json:"salesforce_product_category"`
	IsActive bool             `json:"is_active"`
	Status   *string          `json:"status"`
	LogoURL  *string          `json:"logo_url"`
	Location []locationTagDTO `json:"location"`
}

type locationTagDTO struct {
	MapboxID      *string `json:"mapbox_id"`
	CanonicalName string  `json:"canonical_name"`
}

func (d *productDTO) toDomain() entity.Product {
	tags := make([]entity.LocationTag, 0, len(d.Location))
	for _, l := range d.Location {
		tags = append(tags, entity.LocationTag{
			MapboxID:      deref(l.MapboxID),
			CanonicalName: l.CanonicalName,
		})
	}

	return entity.Product{
		ID:        d.ID,
		Title:     deref(d.Title),
		Category:  deref(d.Category),
		IsActive:  d.IsActive,
		Status:    deref(d.Status),
		LogoURL:   deref(d.LogoURL),
		Locations: tags,
	}
}

type setLocationsRequest struct {
	ID        int64    `json:"id"`
	Locations []string `json:"locations"`
}

type titlesResponse struct {
	Titles []titleDTO `json:"titles"`
}

type titleDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Active      bool    `json:"active"`
	Canonical   bool    `json:"canonical"`
	AliasOfID   *int64  `json:"alias_of__id"`
	Frequency   int     `json:"frequency"`
	JobFunction *string `json:"jobFunction__name"`
	Industry    *string `json:"industry__name"`
}

func (d *titleDTO) toDomain() *entity.Title {
	return &entity.Title{
		ID:          d.ID,
		Name:        d.Name,
		Active:      d.Active,
		Canonical:   d.Canonical,
		AliasOfID:   d.AliasOfID,
		Frequency:   d.Frequency,
		JobFunction: deref(d.JobFunction),
		Industry:    deref(d.Industry),
	}
}

type updateTitleRequest struct {
	ID        int64  `json:"id"`
	Active    bool   `json:"active"`
	Canonical bool   `json:"canonical"`
	AliasOfID *int64 `json:"alias_of__id"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
