package entities

// AnalysisReport is the result of one analysis run: every module tree found
// in the build output plus the recoverable issues hit along the way. The
// report is immutable once the analysis returns and discarded between runs.
type AnalysisReport struct {
	Modules []*DependencyNode
	Issues  []*MalformedLineError
}

// NodeCount returns the number of nodes across all module trees, roots
// included.
func (r *AnalysisReport) NodeCount() int {
	count := 0
	for _, root := range r.Modules {
		root.Walk(func(_ *DependencyNode) bool {
			count++
			return true
		})
	}
	return count
}
