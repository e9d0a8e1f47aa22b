package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BardsBallad/Verse/internal/checker"
	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
	"github.com/BardsBallad/Verse/internal/types"
)

var evalExpr string

// readSource resolves a subcommand's input: either the -e/--eval flag's
// inline text, or the single file argument.
func readSource(eval string, args []string) (input, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

// loadContext decodes a --context JSON file (name -> type-annotation
// source) into semantic Type bindings, resolving each annotation through
// the same path the checker uses for VarDecl/FuncDecl annotations. An
// empty path yields a nil map.
func loadContext(path string) (map[string]types.Type, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file %s: %w", path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse context file %s: %w", path, err)
	}

	registry := types.NewRegistry()
	result := make(map[string]types.Type, len(raw))
	for name, src := range raw {
		tokens, err := lexer.Tokenize(src)
		if err != nil {
			return nil, fmt.Errorf("context entry %q: %w", name, err)
		}
		ann, err := parser.ParseTypeAnnotation(tokens)
		if err != nil {
			return nil, fmt.Errorf("context entry %q: %w", name, err)
		}
		t, err := checker.ResolveAnnotation(ann, registry)
		if err != nil {
			return nil, fmt.Errorf("context entry %q: %w", name, err)
		}
		result[name] = t
	}
	return result, nil
}
