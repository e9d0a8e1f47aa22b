package cmd

import (
	"fmt"

	"github.com/BardsBallad/Verse/pkg/verse"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Verse file to its target-language form",
	Long: `Run the full pipeline (lex, parse, check, emit) and print the
inferred return type followed by the emitted code, or the formatted
compile error.

Examples:
  versec compile script.vs
  versec compile --context bindings.json script.vs`,
	Args: cobra.MaximumNArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline code instead of reading from file")
}

func compileScript(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	contextPath, _ := cmd.Flags().GetString("context")
	contextTypes, err := loadContext(contextPath)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	compiler := verse.New(contextTypes)
	result := compiler.Compile(input)
	if !result.OK {
		fmt.Print(result.Err.Format(true))
		fmt.Println()
		return fmt.Errorf("compile failed")
	}

	fmt.Printf("returnType: %s\n---\n", result.ReturnType)
	fmt.Println(result.Code)
	return nil
}
