package cast

// File is a typed view over a Node of kind NodeFile: a reference to an
// external asset by path (§4.3).
type File struct{ *Node }

// NewFile constructs a new File node referencing path.
func NewFile(path string) File {
	f := File{NewNode(NodeFile)}
	f.SetPath(path)
	return f
}

// AsFile views an existing node as a File.
func AsFile(n *Node) File { return File{n} }

func (f File) Path() string     { return f.GetStringOr("p", "") }
func (f File) SetPath(p string) { f.AddString("p", p) }
