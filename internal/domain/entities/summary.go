package entities

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

const (
	kilobyte = 1024
	megabyte = kilobyte * 1024
	gigabyte = megabyte * 1024
)

const (
	conflictReasonPrefix  = "conflict with "
	duplicateReasonPrefix = "duplicate"
)

// ConflictDirection says where mediation moved the version relative to the
// loser, as far as the printed output shows. It is a display-level reading
// of what Maven already decided, never a re-computation.
type ConflictDirection string

const (
	ConflictUpgrade      ConflictDirection = "upgrade"
	ConflictDowngrade    ConflictDirection = "downgrade"
	ConflictUnclassified ConflictDirection = ""
)

// Conflict is one omitted-for-conflict node with the winning version Maven
// kept instead.
type Conflict struct {
	Node          *DependencyNode
	WinnerVersion string
	Direction     ConflictDirection
}

// Summary aggregates one analysis report into the numbers the original
// summary panel shows: counts per scope, optional and omitted totals, and
// sizes with omitted subtrees excluded.
type Summary struct {
	Modules       int
	TotalIncluded int
	CountByScope  map[string]int
	OptionalCount int

	OmittedConflicts  int
	OmittedDuplicates int
	OmittedOther      int
	Conflicts         []Conflict

	SizeByScope    map[string]int64
	TotalSizeBytes int64

	IssueCount int
}

// ScopeOrder is the display order for per-scope lines. Provided and system
// rows are only rendered when non-zero, matching the original panel.
var ScopeOrder = []string{"compile", "runtime", "test", "provided", "system"}

// BuildSummary walks every module tree and counts. Module roots are not
// dependencies and are skipped; omitted nodes are counted separately and
// excluded from all size sums.
func BuildSummary(report *AnalysisReport) *Summary {
	summary := &Summary{
		Modules:      len(report.Modules),
		CountByScope: make(map[string]int),
		SizeByScope:  make(map[string]int64),
		IssueCount:   len(report.Issues),
	}

	for _, root := range report.Modules {
		summary.TotalSizeBytes += root.SubtreeSize()

		root.Walk(func(node *DependencyNode) bool {
			if node == root {
				return true
			}
			summary.countNode(node)
			return true
		})
	}

	return summary
}

func (s *Summary) countNode(node *DependencyNode) {
	if node.Omitted {
		s.countOmission(node)
		return
	}

	s.TotalIncluded++
	scope := node.Scope
	if scope == "" {
		scope = DefaultScope
	}
	s.CountByScope[scope]++
	s.SizeByScope[scope] += node.SizeBytes
	if node.Optional {
		s.OptionalCount++
	}
}

func (s *Summary) countOmission(node *DependencyNode) {
	reason := node.OmittedReason
	switch {
	case strings.HasPrefix(reason, conflictReasonPrefix):
		s.OmittedConflicts++
		winner := winnerVersion(reason)
		s.Conflicts = append(s.Conflicts, Conflict{
			Node:          node,
			WinnerVersion: winner,
			Direction:     classifyConflict(node.Version, winner),
		})
	case strings.HasPrefix(reason, duplicateReasonPrefix):
		s.OmittedDuplicates++
	default:
		s.OmittedOther++
	}
}

// winnerVersion extracts the version mediation kept from an omission
// reason. Maven prints either the bare version ("conflict with 4.0") or the
// full coordinate ("conflict with com.baz:other:jar:4.0").
func winnerVersion(reason string) string {
	rest := strings.TrimPrefix(reason, conflictReasonPrefix)
	if !strings.Contains(rest, ":") {
		return rest
	}

	parts := strings.Split(rest, ":")
	// group:artifact:packaging:version[:scope]
	if len(parts) > 3 { //nolint:mnd // version is the fourth coordinate field
		return parts[3]
	}
	return parts[len(parts)-1]
}

// classifyConflict compares the omitted version against the winner.
// Maven versions are not always semver; anything the comparator cannot
// read stays unclassified.
func classifyConflict(omittedVersion, winner string) ConflictDirection {
	loser := normalizeVersion(omittedVersion)
	kept := normalizeVersion(winner)
	if !semver.IsValid(loser) || !semver.IsValid(kept) {
		return ConflictUnclassified
	}

	switch semver.Compare(kept, loser) {
	case 1:
		return ConflictUpgrade
	case -1:
		return ConflictDowngrade
	default:
		return ConflictUnclassified
	}
}

// normalizeVersion gives a Maven version the "v" prefix the semver package
// expects.
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// FormatSize renders a byte count the way the original panel does: "-" for
// unknown, then B, KB, MB and GB steps.
func FormatSize(bytes int64) string {
	switch {
	case bytes == 0:
		return "-"
	case bytes < kilobyte:
		return fmt.Sprintf("%d B", bytes)
	case bytes < megabyte:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kilobyte))
	case bytes < gigabyte:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(megabyte))
	default:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gigabyte))
	}
}
