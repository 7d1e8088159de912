package id_test

import (
	"bytes"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/resignly/pkg/id"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestNewULID(t *testing.T) {
	t.Parallel()

	u := id.NewULID()
	assert.Len(t, u, id.Length)

	ts, err := id.Time(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Second)
}

func TestNewULIDAt_Deterministic(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1700000000000)

	zeros := id.NewULIDAt(at, bytes.NewReader(make([]byte, 10)))
	assert.Equal(t, "0000000000000000", zeros[10:])

	ones := id.NewULIDAt(at, bytes.NewReader(bytes.Repeat([]byte{0xFF}, 10)))
	assert.Equal(t, "ZZZZZZZZZZZZZZZZ", ones[10:])
	assert.Equal(t, zeros[:10], ones[:10])

	ts, err := id.Time(zeros)
	require.NoError(t, err)
	assert.True(t, at.Equal(ts))
}

func TestNewULIDAt_Sortable(t *testing.T) {
	t.Parallel()

	base := time.UnixMilli(1700000000000)
	var ids []string
	for i := range 5 {
		ids = append(ids, id.NewULIDAt(base.Add(time.Duration(i)*time.Millisecond), bytes.NewReader(bytes.Repeat([]byte{byte(9 - i)}, 10))))
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestNewULIDAt_EntropyFailure(t *testing.T) {
	t.Parallel()

	u := id.NewULIDAt(time.Now(), failingReader{})
	assert.Len(t, u, id.Length)
	_, err := id.Time(u)
	assert.NoError(t, err)
}

func TestTime_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "short", "0000000000000000000000000U", "!!!!!!!!!!!!!!!!!!!!!!!!!!"} {
		_, err := id.Time(s)
		assert.ErrorIs(t, err, id.ErrInvalidULID, s)
	}
}
