package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriterWriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusConflict)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, rw.Status())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriterHTMXStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
		wire int
	}{
		{"ok", http.StatusOK, http.StatusOK},
		{"no content", http.StatusNoContent, http.StatusNoContent},
		{"found", http.StatusFound, http.StatusOK},
		{"unprocessable", http.StatusUnprocessableEntity, http.StatusOK},
		{"server error", http.StatusInternalServerError, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)
			rw.WriteHeader(tt.code)

			assert.Equal(t, tt.code, rw.Status())
			assert.Equal(t, tt.wire, w.Code)
		})
	}
}

func TestResponseWriterWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	calls := 0
	rw.OnBeforeWrite(func() { calls++ })
	rw.OnBeforeWrite(func() { rw.Header().Set("X-Hook", "ran") })

	n, err := rw.Write([]byte("Dear Jane"))
	require.NoError(t, err)
	_, err = rw.Write([]byte(","))
	require.NoError(t, err)

	assert.Equal(t, 9, n)
	assert.Equal(t, int64(10), rw.Size())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "ran", w.Header().Get("X-Hook"))
	assert.Equal(t, "Dear Jane,", w.Body.String())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResponseWriterUnwrapAndFlush(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	assert.Same(t, w, rw.Unwrap())
	rw.Flush()
	assert.True(t, w.Flushed)

	_, _, err := rw.Hijack()
	assert.ErrorIs(t, err, http.ErrNotSupported)
}
