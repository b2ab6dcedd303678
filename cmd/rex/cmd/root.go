package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "A regex lexer and reference parser",
	Long: `rex is a small command-line front end over a context-sensitive regex
tokenizer: a two-state (default / character-class) lexer that turns a regex
pattern into a typed token stream, plus a reference parser used to dump the
resulting tree and to surface structural errors (unbalanced groups, dangling
alternation) that the lexer itself has no business reporting.

Lexical errors (bad escapes, malformed repeat intervals, unterminated
classes) are first-wins: the first one encountered is the one reported, and
scanning terminates at that point rather than continuing past it.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
