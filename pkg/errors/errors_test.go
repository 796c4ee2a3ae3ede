package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regtab/regtab/pkg/errors"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := errors.NewValidationError("models", nil, "at least one model is required")
		assert.Equal(t, "validation failed for field models: at least one model is required", err.Error())
		assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := errors.NewValidationError("", nil, "bad input")
		assert.Equal(t, "validation failed: bad input", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	err := errors.NewConfigError("terms", "keep-set and remove-set are mutually exclusive", errors.ErrInvalidConfig)

	assert.Equal(t, "configuration error in terms: keep-set and remove-set are mutually exclusive", err.Error())
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))
	assert.True(t, errors.IsConfigError(err))
	assert.False(t, errors.IsExtractionError(err))

	t.Run("unwrap", func(t *testing.T) {
		cause := stderrors.New("underlying")
		wrapped := errors.NewConfigError("labels", "bad length", cause)
		assert.Equal(t, cause, stderrors.Unwrap(wrapped))
	})
}

func TestExtractionError(t *testing.T) {
	err := errors.NewExtractionError("fit2", "model object has no recognizable coefficient table", errors.ErrNoCoefficients)

	assert.Equal(t, "extraction failed for model fit2: model object has no recognizable coefficient table", err.Error())
	assert.True(t, stderrors.Is(err, errors.ErrNoCoefficients))
	assert.True(t, errors.IsExtractionError(err))
	assert.False(t, errors.IsConfigError(err))
}

func TestParseError(t *testing.T) {
	cause := stderrors.New("unexpected token")

	t.Run("with file", func(t *testing.T) {
		err := errors.NewParseError("yaml", "model.yaml", "unexpected token", cause)
		assert.Equal(t, "parse error in yaml file model.yaml: unexpected token", err.Error())
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})

	t.Run("without file", func(t *testing.T) {
		err := errors.NewParseError("json", "", "unexpected token", cause)
		assert.Equal(t, "json parse error: unexpected token", err.Error())
	})
}

func TestIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.NewIOError("read", "/tmp/model.yaml", cause)

	assert.Equal(t, "IO error during read of /tmp/model.yaml: permission denied", err.Error())
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrappers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, errors.WrapValidation("f", nil))
		assert.NoError(t, errors.WrapIO("read", "p", nil))
		assert.NoError(t, errors.WrapParse("yaml", "p", nil))
		assert.NoError(t, errors.WrapExtraction("m", nil))
	})

	t.Run("wrap extraction", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := errors.WrapExtraction("m1", cause)
		require.Error(t, err)
		assert.True(t, errors.IsExtractionError(err))
		assert.Equal(t, cause, stderrors.Unwrap(err))
	})

	t.Run("wrap parse", func(t *testing.T) {
		cause := stderrors.New("bad syntax")
		err := errors.WrapParse("yaml", "labels.yaml", cause)
		require.Error(t, err)

		var parseErr *errors.ParseError
		require.True(t, stderrors.As(err, &parseErr))
		assert.Equal(t, "yaml", parseErr.Format)
	})
}

func TestSentinels(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.ErrNotFound))
	assert.False(t, errors.IsNotFound(errors.ErrInvalidConfig))
	assert.True(t, errors.IsCanceled(errors.ErrCanceled))
}
