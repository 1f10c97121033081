// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
)

// Location is a geocoded place that products can be tagged with.
// Parent links form a forest rooted at places such as "Global".
type Location struct {
	ID             int64     `json:"id"`                     // Record key in the backing store.
	MapboxID       string    `json:"mapbox_id"`              // External geocoder id. Empty when the record is missing one.
	CanonicalName  string    `json:"canonical_name"`         // Display name. Expected to be unique but not enforced.
	WithinID       *int64    `json:"within_id"`              // Record key of the immediate parent, nil for roots.
	ParentMapboxID string    `json:"parent_mapbox_id"`       // Geocoder id of the immediate parent, empty for roots.
	ParentName     string    `json:"parent_name"`            // Canonical name of the immediate parent.
	Approved       bool      `json:"approved"`               // Unapproved locations are excluded from some checks.
	Context        []string  `json:"context,omitempty"`      // Geocoder context tags, e.g. "continent.X". Nil when absent.
	BoundingBox    []float64 `json:"bounding_box,omitempty"` // minLon, minLat, maxLon, maxLat. Nil when unknown.
}

// HasParent reports whether the location references a parent by key, geocoder id or name.
// The admin backend reports parents by name even when the parent has no geocoder id.
func (l *Location) HasParent() bool {
	return l.WithinID != nil || l.ParentMapboxID != "" || l.ParentName != ""
}

// HasMapboxID reports whether the location carries an external geocoder id.
func (l *Location) HasMapboxID() bool {
	return l.MapboxID != ""
}

// AdminURL returns the admin change page for the location.
func (l *Location) AdminURL() string {
	return "/admin/products/location/" + strconv.FormatInt(l.ID, 10) + "/change/"
}

// LocationTag is a location reference attached to a product.
type LocationTag struct {
	MapboxID      string `json:"mapbox_id"`
	CanonicalName string `json:"canonical_name"`
}
