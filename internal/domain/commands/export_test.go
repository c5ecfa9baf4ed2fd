package commands

// ParseBuildOutput exports parseBuildOutput for testing.
var ParseBuildOutput = parseBuildOutput //nolint:gochecknoglobals // test export

// LocateTreeWindow exports locateTreeWindow for testing.
var LocateTreeWindow = locateTreeWindow //nolint:gochecknoglobals // test export

// IsTreeRootLine exports isTreeRootLine for testing.
var IsTreeRootLine = isTreeRootLine //nolint:gochecknoglobals // test export

// CalculateDepth exports calculateDepth for testing.
var CalculateDepth = calculateDepth //nolint:gochecknoglobals // test export

// StripTreeGlyphs exports stripTreeGlyphs for testing.
var StripTreeGlyphs = stripTreeGlyphs //nolint:gochecknoglobals // test export

// SplitCoordinateAnnotation exports splitCoordinateAnnotation for testing.
var SplitCoordinateAnnotation = splitCoordinateAnnotation //nolint:gochecknoglobals // test export

// ParseCoordinates exports parseCoordinates for testing.
var ParseCoordinates = parseCoordinates //nolint:gochecknoglobals // test export

// PropagateDeclaredScopes exports propagateDeclaredScopes for testing.
var PropagateDeclaredScopes = propagateDeclaredScopes //nolint:gochecknoglobals // test export

// PropagateScope exports propagateScope for testing.
var PropagateScope = propagateScope //nolint:gochecknoglobals // test export

// RunAnalysis exports runAnalysis for testing.
var RunAnalysis = runAnalysis //nolint:gochecknoglobals // test export

// EnrichSizes exports enrichSizes for testing.
var EnrichSizes = enrichSizes //nolint:gochecknoglobals // test export

// TreeWindow exports treeWindow for testing.
type TreeWindow = treeWindow
