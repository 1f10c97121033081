package impl

import (
	"testing"

	"go.uber.org/goleak"
)

// Prune and relevance runs fan out; every worker must be joined before returning.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
