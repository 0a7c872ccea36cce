package doctree

// Record is one parsed docstring block. The first record of a file is the
// file-level summary; the rest describe functions or other entities.
//
// An explicit empty value, such as ":description:" with nothing after the
// colon, is indistinguishable from an omitted one: both leave the field
// empty and the rendered page shows the fallback text.
type Record struct {
	Name        string  // Entity or module name
	Description string  // Free-form description; empty if absent or given empty
	Returns     string  // Return value description; empty if absent or given empty
	Markdown    string  // Verbatim markdown block; empty if absent or empty
	Params      []Param // In declaration order
	Raises      []Raise // In declaration order
}

// Param documents one parameter.
type Param struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Raise documents one error or exception an entity can produce.
type Raise struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// EntryKind distinguishes directories from generated pages.
type EntryKind string

const (
	KindDirectory EntryKind = "directory"
	KindPage      EntryKind = "page"
)

// Entry is a node in the generated output tree.
type Entry struct {
	Path     string    `json:"path"` // Slash-separated, relative to the walk root
	Name     string    `json:"name"`
	Kind     EntryKind `json:"kind"`
	Children []*Entry  `json:"children,omitempty"` // Directories only
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}
