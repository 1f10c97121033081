package repository

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/errors"
)

// ErrTitleNotFound is returned when a title id is unknown to the store.
var ErrTitleNotFound = errors.New("title not found")

// TitleRepository defines the job title operations of the store.
type TitleRepository interface {
	// ListTitles returns every job title.
	ListTitles(ctx context.Context) ([]*entity.Title, error)

	// UpdateTitle persists the active, canonical and alias fields of a title.
	UpdateTitle(ctx context.Context, title *entity.Title) error
}
