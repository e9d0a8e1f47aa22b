package cmd

import (
	"fmt"
	"os"

	"github.com/BardsBallad/Verse/internal/verselog"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "versec",
	Short: "Verse compiler CLI",
	Long: `versec drives the Verse scripting-language pipeline: lex, parse,
type-check and emit.

Verse programs are typed scripts meant to be embedded in a host
application and transpiled to a target language under a single implicit
async wrapper. This CLI exposes each pipeline stage independently for
debugging, plus a full "compile" command that mirrors the pkg/verse
façade.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		verselog.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("context", "", "path to a JSON file of name -> type-annotation-source host bindings")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
