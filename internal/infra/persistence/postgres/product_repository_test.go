package postgres

import (
	"testing"

	domainerrors "curator/internal/domain/errors"
	"curator/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locationRow(id int64, name string) model.LocationModel {
	return model.LocationModel{ID: id, CanonicalName: name}
}

func locationIDs(locations []model.LocationModel) []int64 {
	ids := make([]int64, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}

	return ids
}

func TestResolveLocationNames(t *testing.T) {
	netherlands := locationRow(3, "Netherlands")
	amsterdam := locationRow(5, "Amsterdam")
	otherAmsterdam := locationRow(9, "Amsterdam")
	berlin := locationRow(7, "Berlin")

	tests := []struct {
		name       string
		current    []model.LocationModel
		candidates []model.LocationModel
		names      []string
		wantIDs    []int64
		wantErr    error
	}{
		{
			name:       "duplicated name keeps the tagged location",
			current:    []model.LocationModel{netherlands, amsterdam},
			candidates: []model.LocationModel{amsterdam, otherAmsterdam},
			names:      []string{"Amsterdam"},
			wantIDs:    []int64{5},
		},
		{
			name:       "unique new name is added",
			current:    []model.LocationModel{amsterdam},
			candidates: []model.LocationModel{amsterdam, berlin},
			names:      []string{"Amsterdam", "Berlin"},
			wantIDs:    []int64{5, 7},
		},
		{
			name:       "empty set clears tags",
			current:    []model.LocationModel{amsterdam},
			candidates: nil,
			names:      nil,
			wantIDs:    []int64{},
		},
		{
			name:       "ambiguous untagged name",
			current:    []model.LocationModel{netherlands},
			candidates: []model.LocationModel{amsterdam, otherAmsterdam},
			names:      []string{"Amsterdam"},
			wantErr:    domainerrors.ErrTagUpdateFailed,
		},
		{
			name:       "unknown name",
			current:    []model.LocationModel{netherlands},
			candidates: nil,
			names:      []string{"Atlantis"},
			wantErr:    domainerrors.ErrLocationNotFound,
		},
		{
			name:       "repeated name is written once",
			current:    []model.LocationModel{amsterdam},
			candidates: []model.LocationModel{amsterdam},
			names:      []string{"Amsterdam", "Amsterdam"},
			wantIDs:    []int64{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveLocationNames(tt.current, tt.candidates, tt.names)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, locationIDs(got))
		})
	}
}
