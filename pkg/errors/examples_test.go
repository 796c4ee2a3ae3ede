package errors_test

import (
	"fmt"

	"github.com/regtab/regtab/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	// A model without a coefficient table fails extraction
	err := errors.NewExtractionError("fit2", "model object has no recognizable coefficient table", errors.ErrNoCoefficients)

	// Check error type
	if errors.IsExtractionError(err) {
		fmt.Println("Model omitted from table")
	}

	// Output: Model omitted from table
}

// Example_configError demonstrates fatal configuration errors.
func Example_configError() {
	// Keep-set and remove-set cannot be combined
	err := errors.NewConfigError("terms",
		"keep-set and remove-set are mutually exclusive", errors.ErrInvalidConfig)

	// Configuration errors abort table construction entirely
	if errors.IsConfigError(err) {
		fmt.Println(err.Error())
	}

	// Output: configuration error in terms: keep-set and remove-set are mutually exclusive
}

// Example_validationError shows input validation errors.
func Example_validationError() {
	// Validate input
	var models []string
	if len(models) == 0 {
		err := errors.NewValidationError("models", models, "at least one model is required")
		fmt.Println(err.Error())
	}

	// Output: validation failed for field models: at least one model is required
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	// Original error
	originalErr := fmt.Errorf("unexpected end of stream")

	// Wrap with parse context
	parseErr := errors.WrapParse("yaml", "model.yaml", originalErr)

	fmt.Println(parseErr.Error())

	// Output: parse error in yaml file model.yaml: unexpected end of stream
}

// Example_errorChaining shows chained error handling.
func Example_errorChaining() {
	// A missing label file surfaces as an IO error wrapping the cause
	baseErr := fmt.Errorf("no such file or directory")
	ioErr := errors.NewIOError("read", "labels.yaml", baseErr)

	// Walk the chain using the standard library
	if ioErr.Err != nil {
		fmt.Println("Caused by:", ioErr.Err)
	}

	// Output: Caused by: no such file or directory
}
