// Package id generates ULIDs used as request ids.
package id

import (
	"crypto/rand"
	"errors"
	"io"
	"strings"
	"time"
)

// Crockford base32, without I, L, O and U.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Length of an encoded ULID.
const Length = 26

// ErrInvalidULID is returned by Time for malformed input.
var ErrInvalidULID = errors.New("id: invalid ULID")

// NewULID returns a ULID for the current time. ULIDs sort by creation time
// with millisecond precision.
func NewULID() string {
	return NewULIDAt(time.Now(), rand.Reader)
}

// NewULIDAt encodes the millisecond timestamp of t followed by 80 bits read
// from entropy. When entropy fails the random part is derived from the
// clock's nanoseconds.
func NewULIDAt(t time.Time, entropy io.Reader) string {
	var random [10]byte
	if _, err := io.ReadFull(entropy, random[:]); err != nil {
		ns := uint64(time.Now().UnixNano())
		for i := range 8 {
			random[i] = byte(ns >> (56 - 8*i))
		}
	}

	var out [Length]byte
	ms := uint64(t.UnixMilli())
	for i := 9; i >= 0; i-- {
		out[i] = alphabet[ms&0x1F]
		ms >>= 5
	}

	// 80 bits split into 16 groups of 5, most significant first.
	var hi uint64
	for _, b := range random[:8] {
		hi = hi<<8 | uint64(b)
	}
	lo := uint64(random[8])<<8 | uint64(random[9])
	for i := Length - 1; i >= 10; i-- {
		out[i] = alphabet[lo&0x1F]
		lo = lo>>5 | (hi&0x1F)<<11
		hi >>= 5
	}

	return string(out[:])
}

// Time returns the timestamp encoded in a ULID.
func Time(ulid string) (time.Time, error) {
	if len(ulid) != Length {
		return time.Time{}, ErrInvalidULID
	}
	var ms uint64
	for i := range 10 {
		v := strings.IndexByte(alphabet, strings.ToUpper(ulid[i : i+1])[0])
		if v < 0 {
			return time.Time{}, ErrInvalidULID
		}
		ms = ms<<5 | uint64(v)
	}
	for i := 10; i < Length; i++ {
		if strings.IndexByte(alphabet, strings.ToUpper(ulid[i : i+1])[0]) < 0 {
			return time.Time{}, ErrInvalidULID
		}
	}
	return time.UnixMilli(int64(ms)), nil
}
