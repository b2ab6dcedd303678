package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cgrx/rexlex/internal/parser"
	"github.com/cgrx/rexlex/pkg/rex"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Compile a regex pattern and report its flags",
	Long: `Compile a regex pattern and report the flags and errors the core
library attaches to it: start/end anchoring, whether the pattern is still a
plain literal string, and any lexical or structural error.

If no file is provided, reads from stdin.
Use -e to parse a single inline pattern.
Use --dump-ast to additionally print the reference parser's tree; this tree
is a debugging aid only, not a load-bearing part of the tokenizer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an inline pattern from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the reference parser's tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string

	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no pattern provided")
		}
		input = args[0]
	} else if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	regex, err := rex.Compile(input)

	fmt.Printf("StartAnchored: %v\n", regex.HasFlag(rex.StartAnchored))
	fmt.Printf("EndAnchored:   %v\n", regex.HasFlag(rex.EndAnchored))
	fmt.Printf("LiteralString: %v\n", regex.HasFlag(rex.LiteralString))

	if parseDumpAST {
		if node, ok := regex.Program.(*parser.Node); ok {
			fmt.Println("Parse tree:")
			fmt.Println("===========")
			fmt.Print(node.String())
		}
	}

	if err != nil {
		return err
	}
	if !regex.Ok() {
		return fmt.Errorf("structural error: %s (%s)", regex.ErrorMessage, regex.ErrorCode)
	}

	return nil
}
