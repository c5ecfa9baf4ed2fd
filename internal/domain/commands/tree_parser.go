package commands

import (
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depscope/internal/domain/entities"
)

const (
	infoMarker         = "[INFO]"
	sectionSeparator   = "---"
	buildMarker        = "BUILD"
	buildFailureMarker = "BUILD FAILURE"

	placeholderField    = "unknown"
	minCoordinateFields = 3
)

// treeWindow is the half-open line range [Start, End) of one dependency
// tree inside the build output. Start is the root line.
type treeWindow struct {
	Start int
	End   int
}

// parseBuildOutput turns a full `mvn dependency:tree -Dverbose` blob into
// an analysis report, one module tree per tree window. Reactor builds print
// one window per module; all of them are collected.
//
// No window at all is fatal: UpstreamFailureError when the blob says the
// build itself failed, NoTreeFoundError otherwise. Both carry the raw text
// verbatim so callers can show it.
func parseBuildOutput(output string) (*entities.AnalysisReport, error) {
	lines := strings.Split(output, "\n")
	report := &entities.AnalysisReport{}

	offset := 0
	for {
		window, next, found := locateTreeWindow(lines, offset)
		if !found {
			break
		}
		logger.Debugf("Found dependency tree at lines %d-%d", window.Start+1, window.End)

		root, assembleErr := assembleTree(lines, window, report)
		if assembleErr != nil {
			return nil, assembleErr
		}
		report.Modules = append(report.Modules, root)
		offset = next
	}

	if len(report.Modules) == 0 {
		if strings.Contains(output, buildFailureMarker) {
			return nil, &entities.UpstreamFailureError{Output: output}
		}
		return nil, &entities.NoTreeFoundError{Output: output}
	}

	return report, nil
}

// locateTreeWindow scans from the given offset for the next tree root line
// and extends the window to the first terminal line ("---" separator or a
// BUILD status line) or EOF. It returns the offset where a later scan may
// resume.
func locateTreeWindow(lines []string, from int) (treeWindow, int, bool) {
	start := -1
	for i := from; i < len(lines); i++ {
		if isTreeRootLine(lines[i]) {
			start = i
			break
		}
	}
	if start == -1 {
		return treeWindow{}, len(lines), false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], sectionSeparator) || strings.Contains(lines[i], buildMarker) {
			end = i
			break
		}
	}

	return treeWindow{Start: start, End: end}, end + 1, true
}

// isTreeRootLine reports whether the line is the root of a dependency
// tree: an [INFO] line that is not a section separator and whose payload is
// a coordinate with a known packaging token.
func isTreeRootLine(line string) bool {
	if !strings.Contains(line, ":jar:") &&
		!strings.Contains(line, ":war:") &&
		!strings.Contains(line, ":pom:") {
		return false
	}
	if !strings.HasPrefix(strings.TrimSpace(line), infoMarker) || strings.Contains(line, sectionSeparator) {
		return false
	}
	return strings.Count(payloadAfter(line), ":") >= minCoordinateFields
}

// payloadAfter returns everything after the log-level bracket, trimmed.
func payloadAfter(line string) string {
	idx := strings.Index(line, "]")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}

// assembleTree parses the window's root and attaches every descendant with
// a depth stack. Recoverable line issues land on the report; a line whose
// depth has no parent on the stack aborts with BrokenHierarchyError.
func assembleTree(
	lines []string,
	window treeWindow,
	report *entities.AnalysisReport,
) (*entities.DependencyNode, error) {
	root := parseNodeLine(payloadAfter(lines[window.Start]), window.Start+1, report)

	type frame struct {
		node  *entities.DependencyNode
		depth int
	}
	stack := []frame{{node: root, depth: 0}}

	for i := window.Start + 1; i < window.End; i++ {
		line := lines[i]
		if !strings.Contains(line, infoMarker) || !strings.Contains(line, ":") {
			continue
		}

		bracket := strings.Index(line, "]")
		if bracket < 0 {
			continue
		}
		payload := line[bracket+1:]

		depth := calculateDepth(payload)
		cleaned := stripTreeGlyphs(payload)
		if cleaned == "" || !strings.Contains(cleaned, ":") {
			continue
		}

		node := parseNodeLine(cleaned, i+1, report)

		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return nil, &entities.BrokenHierarchyError{
				LineNumber: i + 1,
				Line:       strings.TrimSpace(line),
			}
		}

		stack[len(stack)-1].node.AddChild(node)
		stack = append(stack, frame{node: node, depth: depth})
	}

	return root, nil
}

// calculateDepth decodes the tree-glyph indentation: every "|" rail adds a
// level, the branch glyphs "+", "\" and "-" add the final level, and the
// first payload rune ends the scan.
func calculateDepth(line string) int {
	depth := 0
	for _, r := range line {
		switch {
		case r == '+' || r == '\\' || r == '-':
			return depth + 1
		case r == '|':
			depth++
		case r != ' ':
			return depth
		}
	}
	return depth
}

// stripTreeGlyphs removes the leading glyph run so only the node payload
// remains.
func stripTreeGlyphs(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, " \t|+\\-"))
}

// parseNodeLine builds a node from a cleaned payload. A payload whose
// coordinates cannot be split yields a placeholder node and a recorded
// issue; the analysis keeps going.
func parseNodeLine(payload string, lineNumber int, report *entities.AnalysisReport) *entities.DependencyNode {
	coords, annotation := splitCoordinateAnnotation(payload)

	node, ok := parseCoordinates(coords)
	if !ok {
		issue := &entities.MalformedLineError{LineNumber: lineNumber, Line: payload}
		logger.Warnf("Recovered from %v", issue)
		report.Issues = append(report.Issues, issue)
		return entities.NewDependencyNode(placeholderField, placeholderField, placeholderField)
	}

	entities.ApplyAnnotationText(node, annotation)
	return node
}

// splitCoordinateAnnotation separates the coordinate string from the
// annotation text. Two grammars:
//
//	group:artifact:packaging:version:scope (annotation)
//	(group:artifact:packaging:version:scope - annotation)
//
// The second is the omitted form: content between the outer parens, split
// at the first " - ".
func splitCoordinateAnnotation(payload string) (string, string) {
	if strings.HasPrefix(payload, "(") && strings.Contains(payload, ")") {
		content := payload[1:strings.LastIndex(payload, ")")]
		if dashIdx := strings.Index(content, " - "); dashIdx > 0 {
			return strings.TrimSpace(content[:dashIdx]), strings.TrimSpace(content[dashIdx+3:])
		}
		return strings.TrimSpace(content), ""
	}

	if parenIdx := strings.Index(payload, " ("); parenIdx > 0 {
		coords := strings.TrimSpace(payload[:parenIdx])
		if closeIdx := strings.LastIndex(payload, ")"); closeIdx > parenIdx {
			return coords, strings.TrimSpace(payload[parenIdx+2 : closeIdx])
		}
		return coords, ""
	}

	return strings.TrimSpace(payload), ""
}

// parseCoordinates splits group:artifact:packaging[:version[:scope]].
// Fewer than three fields cannot name an artifact; the caller records the
// malformed line.
func parseCoordinates(coords string) (*entities.DependencyNode, bool) {
	parts := strings.Split(coords, ":")
	if len(parts) < minCoordinateFields {
		return nil, false
	}

	node := entities.NewDependencyNode(parts[0], parts[1], placeholderField)
	node.Packaging = parts[2]
	if len(parts) > 3 { //nolint:mnd // version is the fourth coordinate field
		node.Version = parts[3]
	}
	if len(parts) > 4 { //nolint:mnd // scope is the fifth coordinate field
		node.Scope = parts[4]
	}

	return node, true
}
