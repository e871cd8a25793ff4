package cli

import (
	"fmt"
	"strings"

	"visibilitystack-cli/internal/docs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newDocsCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show help topics (" + strings.Join(docs.Topics(), ", ") + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, t := range docs.Topics() {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			}
			body, ok := docs.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown topic %q (want %s)", args[0], strings.Join(docs.Topics(), "|"))
			}
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			out, err := glamour.Render(body, "auto")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown source")
	return cmd
}
