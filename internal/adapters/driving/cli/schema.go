package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pestsearch/internal/core/domain"
)

var schemaJSON bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the canonical record schema",
	Long: `Prints the 22 canonical fields with the spreadsheet headers accepted for
each. Fields marked with * must be present in every spreadsheet.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(schemaCmd)
}

// schemaField is the JSON form of one schema column.
type schemaField struct {
	Index    int      `json:"index"`
	Key      string   `json:"key"`
	Header   string   `json:"header"`
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Aliases  []string `json:"aliases"`
}

func describeSchema(schema domain.Schema) []schemaField {
	out := make([]schemaField, 0, domain.FieldCount)
	for _, f := range domain.AllFields() {
		out = append(out, schemaField{
			Index:    int(f),
			Key:      f.Key(),
			Header:   f.Header(),
			Label:    f.Label(),
			Required: schema.IsRequired(f),
			Aliases:  schema.AliasesFor(f),
		})
	}
	return out
}

func runSchema(cmd *cobra.Command, _ []string) error {
	schema := domain.DefaultSchema()
	if lookupService != nil {
		schema = lookupService.Schema()
	}

	fields := describeSchema(schema)
	if schemaJSON {
		return writeJSON(cmd.OutOrStdout(), fields)
	}

	for _, f := range fields {
		mark := " "
		if f.Required {
			mark = "*"
		}
		cmd.Printf("%2d %s %-18s %s\n", f.Index, mark, f.Key, f.Header)
		if len(f.Aliases) > 2 {
			cmd.Printf("       aliases: %s\n", strings.Join(f.Aliases[2:], ", "))
		}
	}
	return nil
}
