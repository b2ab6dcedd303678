package cmd

import (
	"fmt"
	"os"

	"github.com/cgrx/rexlex/internal/lexer"
	"github.com/cgrx/rexlex/pkg/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a regex pattern",
	Long: `Tokenize (lex) a regex pattern and print the resulting tokens.

This command is useful for debugging the tokenizer and understanding how a
pattern is split into DEFAULT/CHAR_CLASS tokens.

Examples:
  # Tokenize a pattern from a file
  rex lex pattern.txt

  # Tokenize an inline pattern
  rex lex -e '^[a-z]+\d{2,4}$'

  # Show token byte offsets
  rex lex --show-pos -e 'a|b'

  # Show only the illegal token, if any
  rex lex --only-errors -e 'a{6,3}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexPattern,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize an inline pattern instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token byte offsets")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only the illegal token, if any")
}

func lexPattern(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for an inline pattern")
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)

	tokenCount := 0

	for {
		tok := l.NextToken()

		if onlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}

		tokenCount++

		printToken(tok)

		if tok.Type == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		fmt.Printf("Start anchored: %v\n", l.StartAnchored())
		fmt.Printf("End anchored:   %v\n", l.EndAnchored())
		if err := l.Env().FirstError(); err != nil {
			fmt.Printf("First error: %s\n", err.Error())
		}
	}

	if err := l.Env().FirstError(); err != nil {
		return fmt.Errorf("lexical error: %s", err.Error())
	}

	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-13s]", tok.Type)

	switch tok.Type {
	case token.EOF:
		output += " EOF"
	case token.ILLEGAL:
		output += " ILLEGAL"
	default:
		output += fmt.Sprintf(" %s", tok.String())
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
