package catalog

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ItemFilter is a compiled expr filter evaluated against normalized items.
// Categories without a configured filter keep every item.
type ItemFilter struct {
	program *vm.Program
	expr    string
}

// CompileItemFilter compiles a filter expression such as
// "Rating >= 7.0 && Year > 2015" or "hasGenre(\"Drama\")".
func CompileItemFilter(expression string) (*ItemFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(filterEnv(MediaItem{})),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &ItemFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *ItemFilter) Expression() string {
	return f.expr
}

// Evaluate evaluates the filter against an item
func (f *ItemFilter) Evaluate(item MediaItem) (bool, error) {
	output, err := expr.Run(f.program, filterEnv(item))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter '%s': %w", f.expr, err)
	}

	keep, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter '%s' did not evaluate to a boolean (got %T)", f.expr, output)
	}

	return keep, nil
}

// filterEnv builds the expression environment for one item.
func filterEnv(item MediaItem) map[string]interface{} {
	return map[string]interface{}{
		// Item data
		"Title":       item.Title,
		"Type":        item.Type,
		"Year":        item.Year,
		"Rating":      item.Rating,
		"Description": item.Description,
		"Genres":      item.Genres,

		// Helpers
		"hasGenre": func(name string) bool {
			for _, g := range item.Genres {
				if strings.EqualFold(g, name) {
					return true
				}
			}
			return false
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
