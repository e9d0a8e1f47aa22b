package cmd

import (
	"fmt"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Verse file or expression and dump its AST",
	Long: `Lex and parse a Verse program, printing an indented tree of the
resulting AST for debugging the parser.

Examples:
  versec parse script.vs
  versec parse -e "let x = 42"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	fmt.Print(ast.Dump(program))
	return nil
}
