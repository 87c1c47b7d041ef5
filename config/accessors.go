package config

import "strconv"

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// getSigned, getUnsigned and getFloat share one lookup and one conversion path. The bit size
// passed by each accessor must match T so the conversion below cannot truncate.

func getSigned[T signed](s *Store, key string, bitSize int) (T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	v, err := parseInt(key, raw, bitSize)
	if err != nil {
		return 0, s.withPath(err)
	}
	return T(v), nil
}

func getUnsigned[T unsigned](s *Store, key string, bitSize int) (T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	v, err := parseUint(key, raw, bitSize)
	if err != nil {
		return 0, s.withPath(err)
	}
	return T(v), nil
}

func getFloat[T float](s *Store, key string, bitSize int) (T, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(key, raw, bitSize)
	if err != nil {
		return 0, s.withPath(err)
	}
	return T(v), nil
}

func (s *Store) withPath(err error) error {
	if e, ok := err.(*Error); ok && e.Path == "" {
		e.Path = s.path
	}
	return err
}

// Bool reports whether the value for key is a non-zero integer.
func (s *Store) Bool(key string) (bool, error) {
	raw, err := s.Get(key)
	if err != nil {
		return false, err
	}
	v, err := parseBool(key, raw)
	if err != nil {
		return false, s.withPath(err)
	}
	return v, nil
}

// Int returns the value for key as a platform-sized int.
func (s *Store) Int(key string) (int, error) {
	return getSigned[int](s, key, strconv.IntSize)
}

// Int8 returns the value for key, which must fit in 8 bits.
func (s *Store) Int8(key string) (int8, error) {
	return getSigned[int8](s, key, 8)
}

func (s *Store) Int16(key string) (int16, error) {
	return getSigned[int16](s, key, 16)
}

// Int32 returns the value for key, which must fit in 32 bits.
func (s *Store) Int32(key string) (int32, error) {
	return getSigned[int32](s, key, 32)
}

// Int64 returns the value for key, which must fit in 64 bits.
func (s *Store) Int64(key string) (int64, error) {
	return getSigned[int64](s, key, 64)
}

// Uint returns the value for key as a platform-sized uint. A leading "-" is
// ErrValueMalformed, never a wrapped-around value.
func (s *Store) Uint(key string) (uint, error) {
	return getUnsigned[uint](s, key, strconv.IntSize)
}

func (s *Store) Uint8(key string) (uint8, error) {
	return getUnsigned[uint8](s, key, 8)
}

func (s *Store) Uint16(key string) (uint16, error) {
	return getUnsigned[uint16](s, key, 16)
}

func (s *Store) Uint32(key string) (uint32, error) {
	return getUnsigned[uint32](s, key, 32)
}

// Uint64 returns the value for key, which must fit in 64 unsigned bits.
func (s *Store) Uint64(key string) (uint64, error) {
	return getUnsigned[uint64](s, key, 64)
}

// Float32 returns the value for key in decimal or exponent notation. Values beyond the
// float32 range are ErrValueOutOfRange.
func (s *Store) Float32(key string) (float32, error) {
	return getFloat[float32](s, key, 32)
}

// Float64 returns the value for key in decimal or exponent notation.
func (s *Store) Float64(key string) (float64, error) {
	return getFloat[float64](s, key, 64)
}
