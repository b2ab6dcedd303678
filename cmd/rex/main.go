// Command rex is a CLI front end over this module's regex tokenizer and
// reference parser: lex a pattern into tokens, compile it and report its
// flags, or dump the byte-set bitmap a single character class compiles to.
package main

import (
	"fmt"
	"os"

	"github.com/cgrx/rexlex/cmd/rex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
