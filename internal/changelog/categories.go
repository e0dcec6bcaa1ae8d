package changelog

// Recognized conventional commit types. Anything else never produces a
// record.
const (
	TypeFeature     = "feat"
	TypeImprovement = "improvement"
	TypeFix         = "fix"
	TypeStyle       = "style"
	TypeDocs        = "docs"
	TypeRefactor    = "refactor"
	TypePerf        = "perf"
	TypeCI          = "ci"
	TypeTest        = "test"
	TypeBuild       = "build"
	TypeChore       = "chore"
)

// category is a user-facing changelog section.
type category struct {
	Type  string
	Title string
}

// userFacingCategories lists the primary sections in fixed priority order.
var userFacingCategories = []category{
	{TypeFeature, "Features"},
	{TypeImprovement, "Improvements"},
	{TypeFix, "Fixes"},
}

// internalTypes lists types that always land in the footer, in the fixed
// footer concatenation order.
var internalTypes = []string{
	TypeStyle,
	TypeDocs,
	TypeRefactor,
	TypePerf,
	TypeCI,
	TypeTest,
	TypeBuild,
	TypeChore,
}

var knownTypes = func() map[string]bool {
	m := make(map[string]bool)
	for _, c := range userFacingCategories {
		m[c.Type] = true
	}
	for _, t := range internalTypes {
		m[t] = true
	}
	return m
}()

func isKnownType(t string) bool {
	return knownTypes[t]
}
