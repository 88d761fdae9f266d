// Package filter compiles and evaluates process-selection expressions.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Process is the expression environment for a single process.
type Process struct {
	Pid     int
	Comm    string
	Args    []string
	Cmdline string
}

// Filter is a compiled process-selection expression.
type Filter struct {
	src  string
	prog *vm.Program
}

// Compile pre-compiles a selection expression. The expression sees pid,
// comm, args and cmdline, and must evaluate to a boolean.
func Compile(src string) (*Filter, error) {
	exprEnv := map[string]interface{}{
		"pid":     0,
		"comm":    "",
		"args":    []string{},
		"cmdline": "",
	}

	prog, err := expr.Compile(src, expr.Env(exprEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression %q: %w", src, err)
	}

	return &Filter{src: src, prog: prog}, nil
}

// Match evaluates the filter against one process.
func (f *Filter) Match(p Process) (bool, error) {
	out, err := expr.Run(f.prog, map[string]interface{}{
		"pid":     p.Pid,
		"comm":    p.Comm,
		"args":    p.Args,
		"cmdline": p.Cmdline,
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.src, err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.src, out)
	}
	return matched, nil
}
