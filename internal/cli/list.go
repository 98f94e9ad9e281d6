package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwalther/importgraph/pkg/loader/python"
)

// listCommand creates the list command for discovering importable modules.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir>...",
		Short: "List importable modules under a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, dir := range args {
				names, err := python.Discover(dir)
				if err != nil {
					return err
				}

				ldr := python.New([]string{dir})
				for _, name := range names {
					fmt.Println(StyleValue.Render(name) + "  " + StyleDim.Render(ldr.PathOf(name)))
				}
				total += len(names)
			}
			printDetail("%d modules", total)
			return nil
		},
	}
}
