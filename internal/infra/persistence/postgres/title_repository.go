package postgres

import (
	"context"

	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/repository"
	"curator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// titleRepository implements the domain.TitleRepository interface.
type titleRepository struct {
	db *gorm.DB
}

// NewTitleRepository is the constructor for titleRepository.
func NewTitleRepository(db *gorm.DB) repository.TitleRepository {
	return &titleRepository{db: db}
}

// ListTitles returns every job title, most frequent first.
func (repo *titleRepository) ListTitles(ctx context.Context) ([]*entity.Title, error) {
	var titleModels []*model.TitleModel
	if err := repo.db.WithContext(ctx).Order("frequency DESC, id").Find(&titleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list titles")
	}

	titles := make([]*entity.Title, 0, len(titleModels))
	for _, m := range titleModels {
		titles = append(titles, toTitleDomain(m))
	}

	return titles, nil
}

// UpdateTitle persists the active, canonical and alias fields of a title.
func (repo *titleRepository) UpdateTitle(ctx context.Context, title *entity.Title) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TitleModel{ID: title.ID}).
		Select("active", "canonical", "alias_of_id").
		Updates(fromTitleDomain(title))
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(repository.ErrTitleNotFound, "alias target does not exist")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrSelfAlias.WithDetails(title.Name)
		}

		return errors.Wrap(result.Error, "failed to update title")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTitleNotFound
	}

	return nil
}

// toTitleDomain converts a GORM TitleModel to a domain Title.
func toTitleDomain(data *model.TitleModel) *entity.Title {
	if data == nil {
		return nil
	}

	return &entity.Title{
		ID:          data.ID,
		Name:        data.Name,
		Active:      data.Active,
		Canonical:   data.Canonical,
		AliasOfID:   data.AliasOfID,
		Frequency:   data.Frequency,
		JobFunction: derefString(data.JobFunction),
		Industry:    derefString(data.Industry),
	}
}

// fromTitleDomain converts a domain Title to a GORM TitleModel.
func fromTitleDomain(data *entity.Title) *model.TitleModel {
	if data == nil {
		return nil
	}

	return &model.TitleModel{
		ID:        data.ID,
		Name:      data.Name,
		Active:    data.Active,
		Canonical: data.Canonical,
		AliasOfID: data.AliasOfID,
		Frequency: data.Frequency,
	}
}
