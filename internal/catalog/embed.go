package catalog

import "embed"

//go:embed defs
var defsFS embed.FS

// Embedded returns the compiled-in default definition source.
func Embedded() Source {
	return fsSource{fsys: defsFS, path: "defs/distributions.yaml"}
}
