package entity

import (
	"strconv"
)

// Product status values reported by the backing store. An empty status means active.
const (
	ProductStatusDisabled    = "Disabled"
	ProductStatusBlacklisted = "Blacklisted"
)

// GenericProductCategory is the category of general-purpose job boards.
const GenericProductCategory = "Generic Product"

// Product is a job-board listing tagged with the locations it covers.
type Product struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Category  string        `json:"category"` // Salesforce product category, e.g. "Generic Product".
	IsActive  bool          `json:"is_active"`
	Status    string        `json:"status"` // Empty, "Disabled" or "Blacklisted".
	LogoURL   string        `json:"logo_url"`
	Locations []LocationTag `json:"locations"` // Set semantics: order and duplicates carry no meaning.
}

// AdminURL returns the admin change page for the product.
func (p *Product) AdminURL() string {
	return "/admin/products/product/" + strconv.FormatInt(p.ID, 10) + "/change/"
}

// LocationNames returns the canonical names of the tagged locations.
func (p *Product) LocationNames() []string {
	names := make([]string, 0, len(p.Locations))
	for _, tag := range p.Locations {
		names = append(names, tag.CanonicalName)
	}

	return names
}

// LocationIDs returns the geocoder ids of the tagged locations, skipping tags without one.
func (p *Product) LocationIDs() []string {
	ids := make([]string, 0, len(p.Locations))
	for _, tag := range p.Locations {
		if tag.MapboxID != "" {
			ids = append(ids, tag.MapboxID)
		}
	}

	return ids
}
