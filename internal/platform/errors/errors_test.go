package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err      *Error
		expected int
	}{
		{ValidationError("bad input"), http.StatusBadRequest},
		{InternalError("boom", nil), http.StatusInternalServerError},
		{ExternalError("upstream down", nil), http.StatusBadGateway},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.HTTPStatus())
	}
}

func TestError_MessageFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalError("gnews request failed", cause)
	assert.Equal(t, "external: gnews request failed: connection refused", err.Error())

	noCause := ValidationError("invalid platform")
	assert.Equal(t, "validation: invalid platform", noCause.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)
	assert.ErrorIs(t, err, cause)
}

func TestWithField(t *testing.T) {
	err := ValidationError("invalid model").WithField("model", "bert").WithField("index", 3)
	assert.Equal(t, "bert", err.Context["model"])
	assert.Equal(t, 3, err.Context["index"])
}

func TestToResponse_OmitsContext(t *testing.T) {
	err := ValidationError("invalid platform").WithField("platform", "myspace")
	resp := err.ToResponse()
	assert.Equal(t, "invalid platform", resp.Error)
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		orig := ValidationError("bad")
		assert.Same(t, orig, AsStructuredError(orig))
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		orig := ValidationError("bad")
		wrapped := fmt.Errorf("handler: %w", orig)
		assert.Same(t, orig, AsStructuredError(wrapped))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := AsStructuredError(errors.New("whoops"))
		assert.Equal(t, TypeInternal, got.Type)
		assert.Equal(t, "internal server error", got.Message)
	})
}
