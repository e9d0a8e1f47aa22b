package cmd

import (
	"fmt"

	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Verse file or expression",
	Long: `Tokenize a Verse program and print the resulting tokens.

Examples:
  versec lex script.vs
  versec lex -e "let x = 42"
  versec lex --show-kind --show-pos script.vs`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		exitWithError("%s", err.Error())
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", len(tokens))
	}

	return nil
}

func printToken(tok lexer.Token) {
	var output string
	if showKind {
		output = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	if tok.Lexeme == "" {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}
	fmt.Println(output)
}
