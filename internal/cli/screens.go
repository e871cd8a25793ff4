package cli

import (
	"slices"

	"visibilitystack-cli/internal/nav"

	"github.com/spf13/cobra"
)

type screenInfo struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Sidebar bool   `json:"sidebar"`
	Default bool   `json:"default"`
}

func newScreensCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List screen identifiers accepted by --screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			side := nav.SidebarScreens()
			var out []screenInfo
			for _, s := range nav.Screens() {
				out = append(out, screenInfo{
					ID:      string(s),
					Label:   s.Label(),
					Sidebar: slices.Contains(side, s),
					Default: s == nav.DefaultScreen,
				})
			}
			return writeOut(cmd, app, out)
		},
	}
}
