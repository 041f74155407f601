package config

// Version is the current Lumen version.
var Version = "0.1.0"

const SourceFileExt = ".lum"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lum"}

// HasSourceExt returns true if the path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	ext := SourceFileExt
	return len(path) >= len(ext) && path[len(path)-len(ext):] == ext
}

// IsTestMode stabilizes printed unknown-type names (u1, u2, ...) across a
// batch of independent inferences by telling callers they should reset an
// Engine's fresh counter between cases. Set by the CLI's `test` subcommand;
// never read by the engine itself.
var IsTestMode = false

// Built-in base type names (closed for this language).
const (
	IntTypeName    = "Int"
	BoolTypeName   = "Bool"
	StringTypeName = "String"
)

// BaseTypeNames lists every name the type-literal surface accepts after
// an uppercase identifier.
var BaseTypeNames = []string{IntTypeName, BoolTypeName, StringTypeName}

// IsBaseTypeName reports whether name names one of the closed base types.
func IsBaseTypeName(name string) bool {
	for _, n := range BaseTypeNames {
		if n == name {
			return true
		}
	}
	return false
}

// Keywords reserved by the expression grammar.
var Keywords = map[string]bool{
	"let":   true,
	"in":    true,
	"if":    true,
	"then":  true,
	"else":  true,
	"true":  true,
	"false": true,
}
