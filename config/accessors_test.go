package config

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readStore(t *testing.T, contents string) *Store {
	t.Helper()
	store, err := Read(strings.NewReader(contents), Options{})
	require.NoError(t, err)
	return store
}

func TestAccessors(t *testing.T) {
	store := readStore(t, strings.Join([]string{
		"answer = 42",
		"negative = -7",
		"plus = +5",
		"word = abc",
		"suffix = 42abc",
		"hex = 0x2a",
		"huge = 9223372036854775808",
		"byte = 255",
		"overbyte = 256",
		"pi = 3.14159",
		"sci = 6.02e23",
		"giant = 1e400",
		"float32max = 3.5e38",
		"separated = 1_000",
		"hexfloat = 0x1p4",
		"neghexfloat = -0X1P4",
		"negpi = -3.5",
		"zero = 0",
		"one = 1",
		"five = 5",
		"true = true",
	}, "\n"))

	t.Run("Int", func(t *testing.T) {
		v, err := store.Int("answer")
		assert.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = store.Int("plus")
		assert.NoError(t, err)
		assert.Equal(t, 5, v)

		for _, key := range []string{"word", "suffix", "hex", "pi"} {
			_, err = store.Int(key)
			assert.ErrorIs(t, err, ErrValueMalformed, "key %q", key)
		}

		_, err = store.Int("huge")
		assert.ErrorIs(t, err, ErrValueOutOfRange)

		_, err = store.Int("missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("names the key in conversion errors", func(t *testing.T) {
		_, err := store.Int("word")
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "word", e.Key)
		assert.Contains(t, err.Error(), `value malformed "word"`)
	})

	t.Run("signed widths", func(t *testing.T) {
		i8, err := store.Int8("negative")
		assert.NoError(t, err)
		assert.Equal(t, int8(-7), i8)

		_, err = store.Int8("byte")
		assert.ErrorIs(t, err, ErrValueOutOfRange)

		i16, err := store.Int16("byte")
		assert.NoError(t, err)
		assert.Equal(t, int16(255), i16)

		i32, err := store.Int32("answer")
		assert.NoError(t, err)
		assert.Equal(t, int32(42), i32)

		_, err = store.Int64("huge")
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})

	t.Run("unsigned widths", func(t *testing.T) {
		u, err := store.Uint("answer")
		assert.NoError(t, err)
		assert.Equal(t, uint(42), u)

		_, err = store.Uint("negative")
		assert.ErrorIs(t, err, ErrValueMalformed)

		u8, err := store.Uint8("byte")
		assert.NoError(t, err)
		assert.Equal(t, uint8(255), u8)

		_, err = store.Uint8("overbyte")
		assert.ErrorIs(t, err, ErrValueOutOfRange)

		u16, err := store.Uint16("overbyte")
		assert.NoError(t, err)
		assert.Equal(t, uint16(256), u16)

		u32, err := store.Uint32("answer")
		assert.NoError(t, err)
		assert.Equal(t, uint32(42), u32)

		u64, err := store.Uint64("huge")
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt64)+1, u64)
	})

	t.Run("floats", func(t *testing.T) {
		f64, err := store.Float64("pi")
		assert.NoError(t, err)
		assert.InDelta(t, 3.14159, f64, 1e-12)

		f64, err = store.Float64("sci")
		assert.NoError(t, err)
		assert.InDelta(t, 6.02e23, f64, 1e10)

		f64, err = store.Float64("answer")
		assert.NoError(t, err)
		assert.Equal(t, 42.0, f64)

		_, err = store.Float64("giant")
		assert.ErrorIs(t, err, ErrValueOutOfRange)

		for _, key := range []string{"word", "suffix", "separated", "hexfloat", "neghexfloat"} {
			_, err = store.Float64(key)
			assert.ErrorIs(t, err, ErrValueMalformed, "key %q", key)
			_, err = store.Float32(key)
			assert.ErrorIs(t, err, ErrValueMalformed, "key %q", key)
		}

		f64, err = store.Float64("negpi")
		assert.NoError(t, err)
		assert.Equal(t, -3.5, f64)

		_, err = store.Int("separated")
		assert.ErrorIs(t, err, ErrValueMalformed)

		f32, err := store.Float32("pi")
		assert.NoError(t, err)
		assert.InDelta(t, float32(3.14159), f32, 1e-6)

		_, err = store.Float32("float32max")
		assert.ErrorIs(t, err, ErrValueOutOfRange)
	})

	t.Run("Bool", func(t *testing.T) {
		testCases := []struct {
			key      string
			expected bool
		}{
			{key: "zero", expected: false},
			{key: "one", expected: true},
			{key: "five", expected: true},
			{key: "negative", expected: true},
		}
		for _, tt := range testCases {
			t.Run(tt.key, func(t *testing.T) {
				v, err := store.Bool(tt.key)
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, v)
			})
		}

		_, err := store.Bool("true")
		assert.ErrorIs(t, err, ErrValueMalformed)

		_, err = store.Bool("missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("failed conversions leave the store usable", func(t *testing.T) {
		_, err := store.Int("word")
		require.Error(t, err)

		v, err := store.Get("word")
		assert.NoError(t, err)
		assert.Equal(t, "abc", v)

		n, err := store.Int("answer")
		assert.NoError(t, err)
		assert.Equal(t, 42, n)
	})
}
