package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-preview/internal/observability"
	"github.com/jonathan/resume-preview/internal/schemas"
	rootschemas "github.com/jonathan/resume-preview/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a schema",
	Long: `Validates a resume record or theme override against the built-in JSON Schemas,
or any JSON file against a schema file given with --schema.`,
	RunE: runValidate,
}

var (
	validateInput  string
	validateKind   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "json", "j", "", "Path to JSON file to validate (required)")
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "resume", "Built-in schema to use: resume or theme")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema file (overrides --kind)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if validateSchema != "" {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		err = validateEmbedded(validateKind, validateInput)
	}

	printer := observability.NewPrinter(os.Stdout)
	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", validateInput)
		if verbose {
			printer.PrintValidation(nil)
		}
		return nil
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(os.Stdout, "Validation failed: %s\n", validateInput)
		printer.PrintValidation(err)
		return fmt.Errorf("%d validation error(s)", len(validationErr.Errors))
	default:
		return err
	}
}

func validateEmbedded(kind, path string) error {
	var name string
	switch kind {
	case "resume":
		name = rootschemas.Resume
	case "theme":
		name = rootschemas.Theme
	default:
		return fmt.Errorf("unknown schema kind %q (want resume or theme)", kind)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return schemas.ValidateEmbedded(name, data)
}
