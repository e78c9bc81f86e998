package dom

// Document is the set of mounted root containers. It stands in for the host
// page: the renderer looks its mount point up here by id.
type Document struct {
	roots []*Node
}

// NewDocument returns a document with the given roots mounted.
func NewDocument(roots ...*Node) *Document {
	d := &Document{}
	for _, r := range roots {
		d.Mount(r)
	}
	return d
}

// Mount adds root to the document. A root with an id already mounted replaces
// the previous one.
func (d *Document) Mount(root *Node) {
	if root == nil {
		return
	}
	for i, r := range d.roots {
		if root.id != "" && r.id == root.id {
			d.roots[i] = root
			return
		}
	}
	d.roots = append(d.roots, root)
}

// GetElementByID searches every mounted root. It returns nil when nothing
// matches.
func (d *Document) GetElementByID(id string) *Node {
	if d == nil {
		return nil
	}
	for _, r := range d.roots {
		if n := r.FindByID(id); n != nil {
			return n
		}
	}
	return nil
}
