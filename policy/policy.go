// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// MaxExpressionLength is the maximum allowed length for an accept
	// expression. The limit prevents DoS via excessively long expressions.
	MaxExpressionLength = 2048

	// costLimit bounds the runtime cost of evaluating an accept expression
	// against a single redirect.
	costLimit = 250000
)

// Variables available to accept expressions.
const (
	// VarScheme is the inbound redirect's URL scheme (string).
	VarScheme = "scheme"

	// VarParams is the inbound redirect's parameter mapping (map<string, string>).
	VarParams = "params"
)

// envOnce lazily builds the shared CEL environment. The variable
// declarations never change, so one environment serves all policies.
var envOnce = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(VarScheme, cel.StringType),
		cel.Variable(VarParams, cel.MapType(cel.StringType, cel.StringType)),
	)
})

// Policy is a compiled accept expression evaluated against classified
// redirects. A Policy is immutable and safe for concurrent use.
type Policy struct {
	source  string
	program cel.Program
}

// Compile parses, type-checks, and compiles an accept expression.
// The expression must evaluate to a boolean; for example:
//
//	params["username"] != "" && scheme.startsWith("twitterkit-")
func Compile(expr string) (*Policy, error) {
	if len(expr) > MaxExpressionLength {
		return nil, fmt.Errorf("accept expression length %d exceeds maximum of %d",
			len(expr), MaxExpressionLength)
	}

	env, err := envOnce()
	if err != nil {
		return nil, fmt.Errorf("creating CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("compiling accept expression %q: %w", expr, issues.Err())
	}

	program, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("creating program for accept expression %q: %w", expr, err)
	}

	return &Policy{source: expr, program: program}, nil
}

// Source returns the original expression source string.
func (p *Policy) Source() string {
	return p.source
}

// Evaluate runs the policy against a redirect's scheme and parameter mapping.
// A nil params map is evaluated as an empty map.
func (p *Policy) Evaluate(scheme string, params map[string]string) (bool, error) {
	if params == nil {
		params = map[string]string{}
	}

	out, _, err := p.program.Eval(map[string]any{
		VarScheme: scheme,
		VarParams: params,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating accept expression %q: %w", p.source, err)
	}

	accepted, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("accept expression %q evaluated to %T, want bool", p.source, out.Value())
	}
	return accepted, nil
}
