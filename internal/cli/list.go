package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// newListCmd creates the "list" command.
func newListCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "Print every entry sorted by key",
		Long: `Print every entry of a config file, sorted by key.

Formats:
  text  key=value lines using the file's delimiter (default)
  json  a single JSON object
  yaml  a flat YAML mapping`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			store, err := app.Load(args[0])
			if err != nil {
				return err
			}
			entries := store.All()

			switch format {
			case "text":
				keys := maps.Keys(entries)
				slices.Sort(keys)
				for _, key := range keys {
					fmt.Fprintf(app.Out, "%s%c%s\n", key, store.Delimiter(), entries[key])
				}
				return nil
			case "json":
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "yaml":
				body, err := yaml.Marshal(entries)
				if err != nil {
					return fmt.Errorf("encoding yaml: %w", err)
				}
				_, err = app.Out.Write(body)
				return err
			default:
				return fmt.Errorf("unknown format %q (valid formats: text, json, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}
