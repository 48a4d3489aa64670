package cast

import (
	"io"
	"os"

	"github.com/go-cast/cast/internal/utils"
)

// Document is the top-level container a Cast file decodes to: an
// ordered list of root nodes (§6.3's `root[root_count]`).
type Document struct {
	Roots []*Node
}

// NewDocument constructs an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// AddRoot appends root to the document's root list.
func (d *Document) AddRoot(root *Node) {
	d.Roots = append(d.Roots, root)
}

// Handle is a lower-level entry point beside Load/Save, sharing the same
// decoder and encoder: an already open stream the caller owns the
// lifetime of. Load/LoadFile and
// Save/SaveFile are the convenience wrappers most callers want; use
// Handle directly when the document must share a stream with other
// protocol traffic, or the caller manages buffering itself.
type Handle struct {
	r io.Reader
	w io.Writer
}

// NewHandle wraps an already open stream. r and w may be the same value
// (e.g. a *os.File opened read-write), or either may be nil if the
// handle is only ever used for Decode or only ever used for Encode.
func NewHandle(r io.Reader, w io.Writer) *Handle {
	return &Handle{r: r, w: w}
}

// Decode reads one Document from the handle's reader.
func (h *Handle) Decode() (*Document, error) {
	if h.r == nil {
		return nil, utils.WrapError("decoding document", io.ErrClosedPipe)
	}
	return decodeDocument(h.r)
}

// Encode writes doc to the handle's writer.
func (h *Handle) Encode(doc *Document) error {
	if h.w == nil {
		return utils.WrapError("encoding document", io.ErrClosedPipe)
	}
	return encodeDocument(h.w, doc.Roots)
}

func decodeDocument(r io.Reader) (*Document, error) {
	cr := &countingReader{r: r}

	fh, err := decodeFileHeader(cr)
	if err != nil {
		return nil, err
	}

	doc := &Document{Roots: make([]*Node, 0, fh.RootCount)}
	for i := int32(0); i < fh.RootCount; i++ {
		root, err := decodeNode(cr)
		if err != nil {
			return nil, err
		}
		doc.Roots = append(doc.Roots, root)
	}
	return doc, nil
}

// Load decodes a Document from r (§6.4).
func Load(r io.Reader) (*Document, error) {
	return decodeDocument(r)
}

// LoadFile opens path and decodes a Document from it.
func LoadFile(path string) (*Document, error) {
	//nolint:gosec // G304: caller-supplied path is the documented API surface.
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapError("opening cast file", err)
	}
	defer f.Close()

	doc, err := decodeDocument(f)
	if err != nil {
		return nil, utils.WrapError("loading cast file "+path, err)
	}
	return doc, nil
}

// saveable is satisfied by *Document and *Node, letting Save accept
// either directly (§6.4: "save accepts either a document or a single
// root node").
type saveable interface {
	roots() []*Node
}

func (d *Document) roots() []*Node { return d.Roots }
func (n *Node) roots() []*Node     { return []*Node{n} }

// Save encodes v — a *Document or a single root *Node — to w. A lone
// Node is wrapped in a synthetic single-root document on the wire; the
// in-memory value passed in is never mutated.
func Save(w io.Writer, v saveable) error {
	return encodeDocument(w, v.roots())
}

// SaveFile encodes v to a newly created (or truncated) file at path.
func SaveFile(path string, v saveable) error {
	//nolint:gosec // G304: caller-supplied path is the documented API surface.
	f, err := os.Create(path)
	if err != nil {
		return utils.WrapError("creating cast file", err)
	}

	if err := encodeDocument(f, v.roots()); err != nil {
		_ = f.Close()
		return utils.WrapError("saving cast file "+path, err)
	}
	return f.Close()
}
