package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/labra-lang/labra/runtime"
)

func main() {
	var noColor bool
	var inputList bool

	rootCmd := &cobra.Command{
		Use:   "labra <source-file> [input]",
		Short: "Run labra programs",
		Long: `labra evaluates a program against one input value.

Without an input argument the program runs against 0. A given input is
read as a decimal integer when it parses as one, and as the list of its
codepoints otherwise; --list reads it as a list literal like "[1, 2, [3]]".`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true, // error printing is ours, with colors
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd.OutOrStdout(), args, inputList)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&inputList, "list", false, "Parse the input argument as a list literal")

	rootCmd.AddCommand(newASTCmd())
	rootCmd.AddCommand(newWatchCmd(&noColor))

	if err := rootCmd.Execute(); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(noColor))
		os.Exit(exitCodeFor(err))
	}
}

// runProgram reads and runs one source file, printing the result and, when
// the result reads back as a string, the decoded text on a second line.
func runProgram(stdout io.Writer, args []string, inputList bool) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	opts := runtime.Options{InputList: inputList}
	if len(args) == 2 {
		opts.Input = args[1]
		opts.HasInput = true
	}

	res, err := runtime.Run(string(source), opts)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(stdout, res.Text)
	if res.HasDecoded {
		_, _ = fmt.Fprintln(stdout, res.Decoded)
	}
	return nil
}
