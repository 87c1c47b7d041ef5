package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCmd creates the "check" command.
func newCheckCmd(provider *AppProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate config files",
		Long: `Load each file and report the first problem found in it.

Exits non-zero if any file is missing, has a malformed line, or repeats
a key.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				store, err := app.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(app.Err, "error: %v\n", err)
					continue
				}
				fmt.Fprintf(app.Out, "ok: %s (%d entries)\n", path, store.Len())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
