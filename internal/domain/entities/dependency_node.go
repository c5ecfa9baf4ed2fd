package entities

import "strings"

const (
	// DefaultPackaging is the packaging Maven assumes when none is printed.
	DefaultPackaging = "jar"
	// DefaultScope is the scope Maven assumes when none is printed.
	DefaultScope = "compile"
)

// DependencyNode is a single artifact in a resolved dependency tree.
// The tree is built once per analysis and never mutated afterwards;
// Parent is a non-owning back-reference maintained by AddChild.
type DependencyNode struct {
	GroupID    string
	ArtifactID string
	Packaging  string
	Version    string
	Scope      string

	Optional      bool
	Omitted       bool
	OmittedReason string

	// Annotations holds the managed-version/-scope notes in the order
	// they were interpreted, deduplicated.
	Annotations []Annotation

	// SizeBytes is the artifact's own size as reported by the size
	// collaborator; 0 means unknown.
	SizeBytes int64

	Parent   *DependencyNode
	Children []*DependencyNode
}

// NewDependencyNode creates a node from the coordinate triple with defaults
// applied for packaging and scope.
func NewDependencyNode(groupID, artifactID, version string) *DependencyNode {
	return &DependencyNode{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Packaging:  DefaultPackaging,
		Version:    version,
		Scope:      DefaultScope,
	}
}

// AddChild appends child to the node's children (document order) and sets
// the parent back-reference.
func (n *DependencyNode) AddChild(child *DependencyNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Depth returns the number of ancestors of the node.
func (n *DependencyNode) Depth() int {
	depth := 0
	for current := n.Parent; current != nil; current = current.Parent {
		depth++
	}
	return depth
}

// Walk visits the subtree rooted at n in preorder (document order) using an
// explicit work stack. Returning false from visit stops the walk.
func (n *DependencyNode) Walk(visit func(node *DependencyNode) bool) {
	stack := []*DependencyNode{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(current) {
			return
		}

		// Push children in reverse so they pop in document order.
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
}

// Path returns the chain of coordinates from the root down to this node.
// The original UI shows this as the "brought in by" breadcrumb.
func (n *DependencyNode) Path() []string {
	var chain []string
	for current := n; current != nil; current = current.Parent {
		chain = append(chain, current.Coordinates())
	}
	// Reverse into root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Coordinates returns the group:artifact:version triple. It doubles as the
// key for size memoization.
func (n *DependencyNode) Coordinates() string {
	return n.GroupID + ":" + n.ArtifactID + ":" + n.Version
}

// String renders the node the way the dependency tree names it: the
// coordinate triple, the packaging when it is not a jar, the scope when it
// is not compile, and an optional marker.
func (n *DependencyNode) String() string {
	var sb strings.Builder
	sb.WriteString(n.Coordinates())
	if n.Packaging != "" && n.Packaging != DefaultPackaging {
		sb.WriteString(":")
		sb.WriteString(n.Packaging)
	}
	if n.Scope != "" && n.Scope != DefaultScope {
		sb.WriteString(" (")
		sb.WriteString(n.Scope)
		sb.WriteString(")")
	}
	if n.Optional {
		sb.WriteString(" (optional)")
	}
	return sb.String()
}

// SubtreeSize returns the node's own size plus the subtree sizes of its
// non-omitted children. Omitted subtrees never ship, so they contribute
// nothing.
func (n *DependencyNode) SubtreeSize() int64 {
	return n.SubtreeSizes()[n]
}

// SubtreeSizes computes the subtree size of every node under n in one
// post-order pass over an explicit stack, no recursion. Omitted nodes are
// excluded from their parents' totals but still get an own entry.
func (n *DependencyNode) SubtreeSizes() map[*DependencyNode]int64 {
	order := make([]*DependencyNode, 0)
	stack := []*DependencyNode{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, current)
		stack = append(stack, current.Children...)
	}

	totals := make(map[*DependencyNode]int64, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		total := node.SizeBytes
		for _, child := range node.Children {
			if !child.Omitted {
				total += totals[child]
			}
		}
		totals[node] = total
	}
	return totals
}

// NotesText joins the annotation notes for display ("; " separated).
// Interpretation keeps notes as typed records; only this surface joins them.
func (n *DependencyNode) NotesText() string {
	if len(n.Annotations) == 0 {
		return ""
	}
	parts := make([]string, 0, len(n.Annotations))
	for _, a := range n.Annotations {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, "; ")
}
