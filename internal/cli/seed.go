package cli

import (
	"visibilitystack-cli/internal/config"
	"visibilitystack-cli/internal/store"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the data the dashboard starts with",
		Long: `Print the company profile, ICPs and competitors the dashboard would load.

Without --seed (or VSTACK_SEED / seed: in vstack.yaml) this is the built-in data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.ConfigFile, cmd.Flags())
			if err != nil {
				return err
			}
			seed, err := store.LoadSeedFile(cfg.SeedPath)
			if err != nil {
				return err
			}
			// Round-trip through the store so the output matches what the
			// dashboard sees.
			st, err := store.New(seed)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, st.Snapshot())
		},
	}
}
