package cli

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Output the JSON schema of structured results",
	Long:   `Output the JSON schema of the document printed by --output json.`,
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaBytes, err := newCalculationSchema()
		if err != nil {
			return fmt.Errorf("generating schema: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(schemaBytes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// newCalculationSchema reflects CalculationOutput into a JSON schema.
func newCalculationSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		KeyNamer: strcase.SnakeCase,
		Namer: func(t reflect.Type) string {
			return strcase.SnakeCase(t.Name())
		},
		ExpandedStruct: true,
	}

	return json.MarshalIndent(r.Reflect(&CalculationOutput{}), "", "  ")
}
