package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrap_KeepsSentinel(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "load locations"), "product %d", 7)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "product 7: load locations: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsSentinel")
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAs(t *testing.T) {
	err := WithStack(&codedError{code: "SELF_ALIAS"})

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "SELF_ALIAS", target.code)
}
