package cmd

import (
	"fmt"

	"github.com/cgrx/rexlex/internal/lexer"
	"github.com/cgrx/rexlex/pkg/token"
	"github.com/spf13/cobra"
)

var bitmapCmd = &cobra.Command{
	Use:   "bitmap <class-literal>",
	Short: "Dump the 256-bit bitmap a character class compiles to",
	Long: `Dump the 256-bit bitmap a single character-class literal compiles to.

This is a debugging convenience for the tokenizer's CHAR_CLASS mode: it
lexes exactly one token from the given literal and, if that token is a
CLASS, prints its bitmap as a 32-byte hex dump alongside the set of bytes
it contains.

Example:
  rex bitmap '[a-z0-9_]'`,
	Args: cobra.ExactArgs(1),
	RunE: runBitmap,
}

func init() {
	rootCmd.AddCommand(bitmapCmd)
}

func runBitmap(cmd *cobra.Command, args []string) error {
	l := lexer.New(args[0])
	tok := l.NextToken()

	if tok.Type != token.CLASS {
		return fmt.Errorf("%q does not lex to a single character class (got %s)", args[0], tok.Type)
	}
	if err := l.Env().FirstError(); err != nil {
		return fmt.Errorf("lexical error: %s", err.Error())
	}

	fmt.Printf("hex:   %s\n", tok.Class.String())

	members := make([]byte, 0, 32)
	for b := 0; b < 256; b++ {
		if tok.Class.Has(byte(b)) {
			members = append(members, byte(b))
		}
	}
	fmt.Printf("count: %d\n", len(members))
	fmt.Print("bytes: ")
	for _, b := range members {
		if b >= 0x20 && b < 0x7f {
			fmt.Printf("%q ", string(b))
		} else {
			fmt.Printf("0x%02x ", b)
		}
	}
	fmt.Println()

	return nil
}
