package cmd

import (
	"fmt"

	"pokedex/internal/browser"
	"pokedex/internal/pokeapi"
	"pokedex/internal/ui"

	"github.com/spf13/cobra"
)

const defaultPrintWidth = 4*ui.CardWidth + 3*ui.CardGap

// newListCmd prints the default batch. Failures print the batch message
// and no cards.
func newListCmd(withEnv func(runFunc) func(*cobra.Command, []string) error) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the first twelve Pokémon",
		Args:  cobra.NoArgs,
		RunE: withEnv(func(cmd *cobra.Command, args []string, e *env) error {
			orch := browser.New(e.client, nil, e.logger.Named("list"))
			return printResult(cmd, orch, orch.LoadDefaultBatch(), width)
		}),
	}
	cmd.Flags().IntVarP(&width, "width", "w", defaultPrintWidth, "output width in columns")
	return cmd
}

// newGetCmd prints one Pokémon by name.
func newGetCmd(withEnv func(runFunc) func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print one Pokémon by name",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(func(cmd *cobra.Command, args []string, e *env) error {
			orch := browser.New(e.client, nil, e.logger.Named("get"))
			req, ok := orch.LoadByName(args[0])
			if !ok {
				return fmt.Errorf("%w: empty name", pokeapi.ErrNotFound)
			}
			return printResult(cmd, orch, req, ui.CardWidth)
		}),
	}
}

func printResult(cmd *cobra.Command, orch *browser.Orchestrator, req browser.Request, width int) error {
	res, _ := orch.Do(cmd.Context(), req)
	if res.Err != nil {
		return res.Err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderGrid(orch.State().Records(), width))
	return nil
}
