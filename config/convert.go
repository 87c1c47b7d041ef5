package config

import (
	"errors"
	"strconv"
	"strings"
)

// All numeric conversion goes through these three functions. Parsing is strict: the whole
// value must be a base-10 number, so "42abc" and "0x2a" are rejected rather than truncated.
// Go literal extensions (digit separators, hex floats) are rejected as well.

func parseInt(key, raw string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, bitSize)
	if err != nil {
		return 0, conversionError(key, err)
	}
	return v, nil
}

func parseUint(key, raw string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, bitSize)
	if err != nil {
		return 0, conversionError(key, err)
	}
	return v, nil
}

func parseFloat(key, raw string, bitSize int) (float64, error) {
	if !isDecimalFloat(raw) {
		return 0, conversionError(key, &strconv.NumError{Func: "ParseFloat", Num: raw, Err: strconv.ErrSyntax})
	}
	v, err := strconv.ParseFloat(raw, bitSize)
	if err != nil {
		return 0, conversionError(key, err)
	}
	return v, nil
}

// isDecimalFloat rejects the forms strconv.ParseFloat accepts beyond plain decimal
// notation: underscores and a 0x prefix.
func isDecimalFloat(raw string) bool {
	if strings.ContainsRune(raw, '_') {
		return false
	}
	unsigned := raw
	if unsigned != "" && (unsigned[0] == '+' || unsigned[0] == '-') {
		unsigned = unsigned[1:]
	}
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// parseBool treats any non-zero integer as true. Words like "true" or "yes" are not accepted.
func parseBool(key, raw string) (bool, error) {
	v, err := parseInt(key, raw, strconv.IntSize)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func conversionError(key string, err error) error {
	kind := ErrValueMalformed
	if errors.Is(err, strconv.ErrRange) {
		kind = ErrValueOutOfRange
	}
	return &Error{Kind: kind, Key: key, Err: err}
}
