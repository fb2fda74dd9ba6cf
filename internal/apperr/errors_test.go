package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	assert.Equal(t, "ok", Class(nil))
	assert.Equal(t, "duplicate", Class(fmt.Errorf("%w: event exists", ErrDuplicate)))
	assert.Equal(t, "io", Class(fmt.Errorf("save: %w", fmt.Errorf("%w: disk", ErrIO))))
	assert.Equal(t, "unknown", Class(errors.New("boom")))
}
