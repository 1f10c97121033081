package validator

import (
	"testing"

	domainerrors "curator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aliasRequest struct {
	CanonicalID int64  `json:"canonical_id" validate:"required,gt=0"`
	Action      string `json:"action,omitempty" validate:"omitempty,oneof=rebase decanonify"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&aliasRequest{CanonicalID: 3}))

	err := v.Validate(&aliasRequest{Action: "merge"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "action must be one of: rebase decanonify; canonical_id is required", appErr.Details())
}
