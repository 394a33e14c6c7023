// Package validation provides input and option validation for the
// calculator boundary. The EATK core accepts any real input; these checks
// mirror the ranges a user is allowed to enter.
package validation

import (
	"fmt"

	"github.com/iwvelando/substat-optimizer/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}
