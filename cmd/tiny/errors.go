package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tiny/internal/errors"
)

func errorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [CODE]",
		Short: "List error codes or explain one",
		Long: `Without arguments, list every error code tiny can report with its
one-line message. With a code, print the full explanation and hint.

Examples:
  tiny errors
  tiny errors E104`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				listErrors(out)
				return nil
			}

			code := strings.ToUpper(args[0])
			if _, ok := errors.GetTemplate(code); !ok {
				return errors.Newf(errors.CategoryInput, "Unknown error code %q", args[0]).
					WithSuggestion("Run 'tiny errors' to list the registered codes.")
			}
			fmt.Fprint(out, errors.New(code).Format())
			return nil
		},
	}
}

// listErrors prints one compact line per registered code.
func listErrors(w io.Writer) {
	for _, code := range errors.GetAllCodes() {
		info(w, "%s", errors.New(code).FormatCompact())
	}
}
