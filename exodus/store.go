package exodus

// Store is the columnar container the reader decodes against: named
// dimensions with sizes, and named typed array variables with optional
// string attributes. The production implementation wraps a NetCDF file;
// tests use the in-memory implementation. A Store is owned exclusively by
// the Mesh built on top of it and is closed when the Mesh closes.
type Store interface {
	// Path identifies the backing file in error messages.
	Path() string

	// Dim returns the size of a named dimension.
	Dim(name string) (size int, ok bool)

	// HasVar reports whether a named variable exists.
	HasVar(name string) bool

	// VarFloat64 returns a numeric variable flattened row-major.
	VarFloat64(name string) ([]float64, error)

	// VarInt returns an integer variable flattened row-major.
	VarInt(name string) ([]int, error)

	// VarNames returns the rows of a fixed-width character array variable,
	// one raw string per row.
	VarNames(name string) ([]string, error)

	// Attr returns a string attribute of a variable, such as the elem_type
	// tag on connectivity tables.
	Attr(varName, attrName string) (val string, ok bool)

	Close() error
}
