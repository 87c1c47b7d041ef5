package config

import "strings"

// syntax holds the two characters that define the file format.
type syntax struct {
	delimiter     byte
	commentMarker byte
}

// trim strips leading and trailing spaces. Other whitespace is significant.
func trim(line string) string {
	return strings.Trim(line, " ")
}

// stripLineEnding drops any trailing carriage returns and newlines so files written with
// CRLF line endings parse the same as LF files.
func stripLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}

func isBlank(line string) bool {
	return trim(line) == ""
}

func (s syntax) isComment(line string) bool {
	line = trim(line)
	if line == "" {
		return false
	}
	return line[0] == s.commentMarker
}

// isIgnorable reports whether line contributes nothing to the store.
func (s syntax) isIgnorable(line string) bool {
	return isBlank(line) || s.isComment(line)
}

// isFormatValid reports whether line holds exactly one delimiter with a non-empty key before
// it and a non-empty value after it.
func (s syntax) isFormatValid(line string) bool {
	line = trim(line)
	if strings.Count(line, string(s.delimiter)) != 1 {
		return false
	}
	key, value := s.split(line)
	return key != "" && value != ""
}

// split cuts line at the first delimiter and trims both halves.
func (s syntax) split(line string) (string, string) {
	i := strings.IndexByte(line, s.delimiter)
	if i < 0 {
		return trim(line), ""
	}
	return trim(line[:i]), trim(line[i+1:])
}

// parseLine classifies a single raw line. It reports ok=false for ignorable lines and
// returns ErrMalformedLine for anything that is neither ignorable nor well-formed.
func (s syntax) parseLine(line string) (key string, value string, ok bool, err error) {
	line = stripLineEnding(line)
	if s.isIgnorable(line) {
		return "", "", false, nil
	}
	if !s.isFormatValid(line) {
		return "", "", false, &Error{Kind: ErrMalformedLine, Text: line}
	}
	key, value = s.split(line)
	return key, value, true, nil
}
