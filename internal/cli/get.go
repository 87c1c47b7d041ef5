package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/ttd2089/kvconf/config"
)

type getterFunc func(s *config.Store, key string) (any, error)

func getter[T any](get func(*config.Store, string) (T, error)) getterFunc {
	return func(s *config.Store, key string) (any, error) {
		return get(s, key)
	}
}

// getters maps --type values to store accessors.
var getters = map[string]getterFunc{
	"string":  getter((*config.Store).Get),
	"bool":    getter((*config.Store).Bool),
	"int":     getter((*config.Store).Int),
	"int8":    getter((*config.Store).Int8),
	"int16":   getter((*config.Store).Int16),
	"int32":   getter((*config.Store).Int32),
	"int64":   getter((*config.Store).Int64),
	"uint":    getter((*config.Store).Uint),
	"uint8":   getter((*config.Store).Uint8),
	"uint16":  getter((*config.Store).Uint16),
	"uint32":  getter((*config.Store).Uint32),
	"uint64":  getter((*config.Store).Uint64),
	"float32": getter((*config.Store).Float32),
	"float64": getter((*config.Store).Float64),
}

func typeNames() string {
	names := maps.Keys(getters)
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// newGetCmd creates the "get" command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	var valueType string
	var useEnv bool

	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print a single value",
		Long: `Print the value stored for a key, converted to the requested type.

Numbers must be base-10 and fit the requested width. Booleans are
integers: 0 prints false, anything else prints true.

With --env, an environment variable overrides the value from the file:
http.listen-port is read from HTTP__LISTEN_PORT when that is set. The key
must still be defined in the file.

Examples:
  kvconf get app.conf name
  kvconf get app.conf http.port --type uint16
  HTTP__PORT=9090 kvconf get app.conf http.port --type uint16 --env
  kvconf get --delimiter : --comment ';' app.ini debug --type bool`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			get, ok := getters[valueType]
			if !ok {
				return fmt.Errorf("unknown type %q (valid types: %s)", valueType, typeNames())
			}

			store, err := app.Load(args[0])
			if err != nil {
				return err
			}

			if useEnv {
				store = store.WithOverrides(config.EnvMap{})
			}

			value, err := get(store, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", "string", "Value type ("+typeNames()+")")
	cmd.Flags().BoolVar(&useEnv, "env", false, "Let environment variables override file values")

	return cmd
}
