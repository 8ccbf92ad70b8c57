package mpheader_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mpheader"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mpheader.Errorf(mpheader.ETEMPLATE, "block %d ran off the end", 3)

	assert.Equal(t, mpheader.ETEMPLATE, mpheader.ErrorCode(err))
	assert.Equal(t, "block 3 ran off the end", mpheader.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("generate: %w", mpheader.Errorf(mpheader.ENOTFOUND, "no product name"))

	assert.Equal(t, mpheader.ENOTFOUND, mpheader.ErrorCode(err))
	assert.Equal(t, "no product name", mpheader.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, mpheader.EINTERNAL, mpheader.ErrorCode(err))
	assert.Equal(t, "Internal error", mpheader.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mpheader.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mpheader.ErrorMessage(nil))
}
