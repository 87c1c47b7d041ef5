package config

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

const (
	DefaultDelimiter     = '='
	DefaultCommentMarker = '#'
)

// Options controls how a config file is parsed. Zero values take the defaults.
type Options struct {
	// Delimiter separates a key from its value. Defaults to '='.
	Delimiter byte

	// CommentMarker, as the first non-space character of a line, makes the line a comment.
	// Defaults to '#'.
	CommentMarker byte

	// Logger receives debug events about loading. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

func (o Options) syntax() (syntax, error) {
	s := syntax{
		delimiter:     o.Delimiter,
		commentMarker: o.CommentMarker,
	}
	if s.delimiter == 0 {
		s.delimiter = DefaultDelimiter
	}
	if s.commentMarker == 0 {
		s.commentMarker = DefaultCommentMarker
	}
	for _, c := range []byte{s.delimiter, s.commentMarker} {
		switch c {
		case ' ', '\r', '\n':
			return syntax{}, &Error{
				Kind: ErrInvalidOptions,
				Err:  fmt.Errorf("%q cannot be used as a delimiter or comment marker", c),
			}
		}
	}
	if s.delimiter == s.commentMarker {
		return syntax{}, &Error{
			Kind: ErrInvalidOptions,
			Err:  fmt.Errorf("delimiter and comment marker are both %q", s.delimiter),
		}
	}
	return s, nil
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// A Store is the immutable contents of a loaded config file. It is safe for concurrent use
// once Load or Read has returned.
type Store struct {
	path    string
	syntax  syntax
	entries map[string]string
	keys    []string
}

// Load reads and parses the file at path. Loading stops at the first malformed line or
// duplicate key; no partial store is returned.
func Load(path string, opts Options) (*Store, error) {
	syn, err := opts.syntax()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: ErrFileNotFound, Path: path, Err: err}
	}
	defer f.Close()

	s, err := read(f, path, syn)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	log.Debug().
		Str("path", path).
		Int("entries", s.Len()).
		Msg("loaded config file")

	return s, nil
}

// Read parses config lines from r. It is Load without the file system.
func Read(r io.Reader, opts Options) (*Store, error) {
	syn, err := opts.syntax()
	if err != nil {
		return nil, err
	}
	s, err := read(r, "", syn)
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	log.Debug().
		Int("entries", s.Len()).
		Msg("read config")

	return s, nil
}

func read(r io.Reader, path string, syn syntax) (*Store, error) {
	s := &Store{
		path:    path,
		syntax:  syn,
		entries: map[string]string{},
	}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, &Error{Kind: ErrFileNotFound, Path: path, Line: lineNo + 1, Err: readErr}
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNo++

		key, value, ok, err := syn.parseLine(line)
		if err != nil {
			e := err.(*Error)
			e.Path = path
			e.Line = lineNo
			return nil, e
		}
		if ok {
			if _, exists := s.entries[key]; exists {
				return nil, &Error{Kind: ErrDuplicateKey, Path: path, Line: lineNo, Key: key}
			}
			s.entries[key] = value
			s.keys = append(s.keys, key)
		}

		if readErr == io.EOF {
			break
		}
	}

	return s, nil
}

// Path returns the file the store was loaded from, or "" if it was read from a reader.
func (s *Store) Path() string {
	return s.path
}

// Delimiter returns the character that separated keys from values in the source.
func (s *Store) Delimiter() byte {
	return s.syntax.delimiter
}

// CommentMarker returns the character that marked comment lines in the source.
func (s *Store) CommentMarker() byte {
	return s.syntax.commentMarker
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns the keys in the order they appear in the file.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// All returns a copy of every entry.
func (s *Store) All() map[string]string {
	return maps.Clone(s.entries)
}

// Lookup implements [Map].
func (s *Store) Lookup(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Get returns the raw value stored for key.
func (s *Store) Get(key string) (string, error) {
	v, ok := s.entries[key]
	if !ok {
		return "", &Error{Kind: ErrKeyNotFound, Path: s.path, Key: key}
	}
	return v, nil
}

// WithOverrides returns a new Store in which every key of s that overrides also holds takes
// the value from overrides. Keys missing from s are not added and s itself is unchanged.
func (s *Store) WithOverrides(overrides Map) *Store {
	out := &Store{
		path:    s.path,
		syntax:  s.syntax,
		entries: make(map[string]string, len(s.entries)),
		keys:    s.Keys(),
	}
	lookup := Chain{overrides, s}
	for _, key := range s.keys {
		out.entries[key], _ = lookup.Lookup(key)
	}
	return out
}
