package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/neo/internal/core/domain/operation"
	"github.com/AntonioJCosta/neo/internal/core/ports"
	"github.com/AntonioJCosta/neo/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(aliasMapping ports.AliasMapping) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List the built-in operations and their aliases.",
		Long: `Displays every built-in operation with the words that select it.
Anything else typed at the prompt runs as a system command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, aliasMapping)
		},
	}
}

func runAliasesCmd(cmd *cobra.Command, aliasMapping ports.AliasMapping) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Built-in operations:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Operation", "Aliases"})
	table.SetBorder(true)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, op := range operation.All() {
		aliases := aliasMapping.AliasesFor(op)
		listed := strings.Join(aliases, ", ")
		if len(aliases) == 0 {
			listed = "-"
		}
		table.Append([]string{op.String(), listed})
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Any other input runs as %s.", operation.Fallback())))
	return nil
}
