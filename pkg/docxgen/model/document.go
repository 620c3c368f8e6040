package model

// Block is a top-level element of a document body.
type Block interface {
	isBlock()
}

// Document is an append-only sequence of blocks.
// The zero value is an empty document ready to use.
type Document struct {
	blocks []Block
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Append returns a new document holding the receiver's blocks followed by b.
// The receiver is left untouched. A nil block is ignored and the receiver is
// returned as is.
func (d *Document) Append(b Block) *Document {
	if b == nil {
		return d
	}
	n := d.Len()
	blocks := make([]Block, n, n+1)
	if d != nil {
		copy(blocks, d.blocks)
	}
	return &Document{blocks: append(blocks, b)}
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.blocks)
}

// Blocks returns the blocks in document order. The slice is a copy; the blocks
// themselves are shared and must be treated as read-only.
func (d *Document) Blocks() []Block {
	if d == nil {
		return nil
	}
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Images returns every image payload in document order.
func (d *Document) Images() []*Image {
	var images []*Image
	for _, b := range d.Blocks() {
		switch el := b.(type) {
		case *Paragraph:
			images = append(images, el.images()...)
		case *Table:
			for _, row := range el.Rows {
				for _, cell := range row {
					for i := range cell.Paragraphs {
						images = append(images, cell.Paragraphs[i].images()...)
					}
				}
			}
		}
	}
	return images
}
