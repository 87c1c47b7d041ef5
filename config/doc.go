// Package config loads flat key/value config files and converts their values on demand.
//
// A file is read line by line. Blank lines and lines whose first non-space character is the
// comment marker are skipped; every other line must hold exactly one delimiter with a
// non-empty key and value on either side:
//
//	# listener
//	http.port = 8080
//	http.debug = 0
//
// Keys may appear only once. Loading fails on the first bad line, and a [Store] is immutable
// once loaded. Values are read back with the typed accessors:
//
//	store, err := config.Load("app.conf", config.Options{})
//	if err != nil {
//		return err
//	}
//	port, err := store.Uint16("http.port")
//
// Booleans are integers: 0 is false and anything else is true.
package config
