package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"

	"github.com/citra-space/citra-go/internal/constants"
)

// rowFilter evaluates a boolean expr expression against the JSON fields of a row.
type rowFilter struct {
	expression string
	program    *vm.Program
}

// compileFilter compiles a --filter expression. An empty expression yields a nil
// filter that matches every row.
func compileFilter(expression string) (*rowFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil //nolint:nilnil // a nil filter matches everything
	}

	program, err := expr.Compile(expression,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(), // row fields are only known at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &rowFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Match reports whether the row satisfies the expression. Rows that fail to
// evaluate do not match.
func (f *rowFilter) Match(row any) (bool, error) {
	if f == nil {
		return true, nil
	}

	env, err := rowEnvironment(row)
	if err != nil {
		return false, err
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		log.Debug().Err(err).Str("filter", f.expression).Msg("Filter evaluation failed")

		return false, nil
	}

	matched, ok := result.(bool)
	if !ok {
		return false, constants.ErrInvalidFilter
	}

	return matched, nil
}

// rowEnvironment exposes a row's wire field names to the expression.
func rowEnvironment(row any) (map[string]any, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row for filter: %w", err)
	}

	env := map[string]any{}

	err = json.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("decoding row for filter: %w", err)
	}

	return env, nil
}

// applyFilter keeps the rows matching the --filter expression.
func applyFilter[T any](rows []T, expression string) ([]T, error) {
	filter, err := compileFilter(expression)
	if err != nil {
		return nil, err
	}

	if filter == nil {
		return rows, nil
	}

	matched := make([]T, 0, len(rows))

	for _, row := range rows {
		ok, err := filter.Match(row)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, row)
		}
	}

	return matched, nil
}
