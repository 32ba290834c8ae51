package preprocessor

import "os"

const (
	// GoSuffix selects the Go host.
	GoSuffix = ".go"
	// ASTSuffix selects the ESTree host: a Babel or ESTree tree saved as JSON
	// next to the source it was parsed from, e.g. sum.js.ast.json.
	ASTSuffix = ".ast.json"

	DefaultConcurrency = 8

	filePerm os.FileMode = 0644
	dirPerm  os.FileMode = 0755
)
