package commands

import (
	"github.com/rios0rios0/depscope/internal/domain/entities"
)

const (
	scopeTest     = "test"
	scopeProvided = "provided"
	scopeRuntime  = "runtime"
)

// propagateDeclaredScopes applies Maven's effective-scope rules once per
// declared dependency of each module root. Only direct declarations
// trigger propagation; omitted nodes never do.
func propagateDeclaredScopes(report *entities.AnalysisReport) {
	for _, root := range report.Modules {
		for _, declared := range root.Children {
			if declared.Omitted {
				continue
			}
			switch declared.Scope {
			case scopeTest, scopeProvided, scopeRuntime:
				propagateScope(declared, declared.Scope)
			}
		}
	}
}

// propagateScope relabels a subtree with the declared scope. Test and
// provided override every descendant; runtime only promotes descendants
// whose scope is compile (or unset) and leaves stronger scopes — and their
// subtrees — alone. Explicit work stack, no recursion.
func propagateScope(node *entities.DependencyNode, scope string) {
	node.Scope = scope

	stack := []*entities.DependencyNode{node}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range current.Children {
			if scope == scopeRuntime && child.Scope != "" && child.Scope != entities.DefaultScope {
				continue
			}
			child.Scope = scope
			stack = append(stack, child)
		}
	}
}
