package service

import (
	"context"
)

// TagUpdateSink accepts the replacement tag-set of a product. A returned
// error means the submission failed; callers log it and move on.
type TagUpdateSink interface {
	SetLocations(ctx context.Context, productID int64, locationNames []string) error
}
