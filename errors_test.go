package wordfreq_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wordfreq.Errorf(wordfreq.EINVALID, "unknown strategy %q", "fast")

	assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	assert.Equal(t, "unknown strategy \"fast\"", wordfreq.ErrorMessage(err))
	assert.Equal(t, "unknown strategy \"fast\"", err.Error())
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading config: %w", wordfreq.Errorf(wordfreq.ENOTFOUND, "missing"))

	assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
	assert.Equal(t, "missing", wordfreq.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, wordfreq.EINTERNAL, wordfreq.ErrorCode(err))
	assert.Equal(t, "Internal error.", wordfreq.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordfreq.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordfreq.ErrorMessage(nil))
}
