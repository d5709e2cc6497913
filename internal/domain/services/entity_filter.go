package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// EntityEnv defines the variables available during filter expression evaluation.
type EntityEnv struct {
	Kind         string         `expr:"kind"`
	Summary      string         `expr:"summary"`
	TimePerSlide float64        `expr:"time_per_slide"`
	HasPace      bool           `expr:"has_pace"`
	StrainsEyes  bool           `expr:"strains_eyes"`
	Fields       map[string]any `expr:"fields"`
}

// NewEntityEnv flattens an insight into filter variables.
func NewEntityEnv(in Insight) EntityEnv {
	env := EntityEnv{
		Kind:    in.Kind,
		Summary: in.Summary,
		Fields:  in.Fields,
	}
	if in.TimePerSlide != nil {
		env.TimePerSlide = *in.TimePerSlide
		env.HasPace = true
	}
	if in.StrainsEyes != nil {
		env.StrainsEyes = *in.StrainsEyes
	}
	return env
}

// EntityFilter selects entities with a compiled boolean expression.
type EntityFilter struct {
	program *vm.Program
}

// CompileEntityFilter compiles a filter expression once. An empty
// expression matches everything.
func CompileEntityFilter(expression string) (*EntityFilter, error) {
	if expression == "" {
		return &EntityFilter{}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(EntityEnv{}),
		expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &EntityFilter{program: program}, nil
}

// Matches evaluates the filter against an insight.
func (f *EntityFilter) Matches(in Insight) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	output, err := expr.Run(f.program, NewEntityEnv(in))
	if err != nil {
		return false, fmt.Errorf("filter expression error: %w", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return boolean: %v", output)
	}
	return result, nil
}
