package cmd

import (
	"fmt"

	"github.com/BardsBallad/Verse/internal/checker"
	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
	"github.com/BardsBallad/Verse/internal/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Lex, parse and type-check a Verse file without emitting",
	Long: `Run the pipeline through type checking only and print the
inferred return type, or the first error encountered.

Examples:
  versec check script.vs
  versec check --context bindings.json script.vs`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkScript,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func checkScript(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	contextPath, _ := cmd.Flags().GetString("context")
	contextTypes, err := loadContext(contextPath)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	chk := checker.New(contextTypes, types.NewRegistry())
	returnType, err := chk.InferReturnType(program)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	fmt.Println(returnType.String())
	return nil
}
