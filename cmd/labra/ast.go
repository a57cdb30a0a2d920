package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/labra-lang/labra/runtime/parser"
	"github.com/labra-lang/labra/runtime/treefmt"
)

// newASTCmd dumps the parse tree of a program without evaluating it
func newASTCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "ast <source-file>",
		Short: "Parse a program and dump its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tree, err := parser.Parse(string(source))
			if err != nil {
				return err
			}
			f, err := treefmt.ParseFormat(format)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer func() { _ = file.Close() }()
				w = file
			}
			return treefmt.Encode(w, tree, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: 'json' or 'cbor'")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
