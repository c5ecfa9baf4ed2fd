package entities

import "strings"

const (
	optionalMarker     = "optional"
	omittedPhrase      = "omitted for"
	versionManagedFrom = "version managed from"
	scopeManagedFrom   = "scope managed from"
	noteSeparator      = ";"
)

// AnnotationKind identifies what a managed-dependency note talks about.
type AnnotationKind string

const (
	// AnnotationVersionManaged records that dependencyManagement overrode
	// the version the dependency declared.
	AnnotationVersionManaged AnnotationKind = "version-managed"
	// AnnotationScopeManaged records that dependencyManagement overrode
	// the scope the dependency declared.
	AnnotationScopeManaged AnnotationKind = "scope-managed"
)

// Annotation is one typed note attached to a dependency node. Value holds
// the payload after the managing phrase (e.g. the original version).
type Annotation struct {
	Kind  AnnotationKind
	Value string
}

// String renders the note the way Maven printed it.
func (a Annotation) String() string {
	switch a.Kind {
	case AnnotationVersionManaged:
		return versionManagedFrom + " " + a.Value
	case AnnotationScopeManaged:
		return scopeManagedFrom + " " + a.Value
	default:
		return a.Value
	}
}

// ApplyAnnotationText folds the verbose-mode annotation text into the node's
// state. The upstream format is substring-based:
//
//   - "optional" marks the dependency optional;
//   - "omitted for <reason>" marks it omitted, reason captured up to the
//     next ";" without the phrase itself;
//   - "version managed from <v>" and "scope managed from <v>" become typed
//     notes, identical notes deduplicated.
//
// Applying the same annotation text twice leaves the node unchanged.
func ApplyAnnotationText(node *DependencyNode, annotation string) {
	if annotation == "" {
		return
	}

	if strings.Contains(annotation, optionalMarker) {
		node.Optional = true
	}

	if strings.Contains(annotation, omittedPhrase) {
		node.Omitted = true
		node.OmittedReason = captureAfter(annotation, omittedPhrase)
	}

	if strings.Contains(annotation, versionManagedFrom) {
		addNote(node, Annotation{
			Kind:  AnnotationVersionManaged,
			Value: captureAfter(annotation, versionManagedFrom),
		})
	}

	if strings.Contains(annotation, scopeManagedFrom) {
		addNote(node, Annotation{
			Kind:  AnnotationScopeManaged,
			Value: captureAfter(annotation, scopeManagedFrom),
		})
	}
}

// captureAfter returns the text following the phrase, cut at the next note
// separator and trimmed.
func captureAfter(annotation, phrase string) string {
	idx := strings.Index(annotation, phrase)
	if idx < 0 {
		return ""
	}
	rest := annotation[idx+len(phrase):]
	if sep := strings.Index(rest, noteSeparator); sep >= 0 {
		rest = rest[:sep]
	}
	return strings.TrimSpace(rest)
}

// addNote appends the note unless an identical one is already present.
func addNote(node *DependencyNode, note Annotation) {
	for _, existing := range node.Annotations {
		if existing == note {
			return
		}
	}
	node.Annotations = append(node.Annotations, note)
}
