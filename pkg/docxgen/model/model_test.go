package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAppendLeavesReceiverUntouched(t *testing.T) {
	empty := NewDocument()
	one := empty.Append(NewParagraph(TextRun("a")))
	two := one.Append(NewTable(1, 1))

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())

	// Appending to the same parent twice must not let the children see each other.
	left := one.Append(NewParagraph(TextRun("left")))
	right := one.Append(NewParagraph(TextRun("right")))
	require.Equal(t, 2, left.Len())
	require.Equal(t, 2, right.Len())
	assert.Equal(t, "left", left.Blocks()[1].(*Paragraph).Text())
	assert.Equal(t, "right", right.Blocks()[1].(*Paragraph).Text())
}

func TestDocumentAppendNil(t *testing.T) {
	doc := NewDocument().Append(NewParagraph())
	assert.Same(t, doc, doc.Append(nil))

	var zero *Document
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 1, zero.Append(NewParagraph()).Len())
}

func TestDocumentBlocksReturnsCopy(t *testing.T) {
	doc := NewDocument().Append(NewParagraph(TextRun("x")))
	blocks := doc.Blocks()
	blocks[0] = NewTable(1, 1)
	_, ok := doc.Blocks()[0].(*Paragraph)
	assert.True(t, ok)
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
	}{
		{"center", AlignCenter},
		{"Center", AlignCenter},
		{"CENTER", AlignCenter},
		{"right", AlignRight},
		{"RiGhT", AlignRight},
		{"justify", AlignJustify},
		{"JUSTIFY", AlignJustify},
		{"left", AlignLeft},
		{"", AlignLeft},
		{"middle", AlignLeft},
		{" center", AlignLeft},
		{"justified", AlignLeft},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAlignment(tt.in))
		})
	}
}

func TestNewTableCellCount(t *testing.T) {
	for rows := uint(0); rows <= 4; rows++ {
		for cols := uint(0); cols <= 4; cols++ {
			tbl := NewTable(rows, cols)
			require.Equal(t, int(rows*cols), tbl.CellCount(), "rows=%d cols=%d", rows, cols)
			require.Equal(t, int(rows), tbl.RowCount())
			for _, row := range tbl.Rows {
				for _, cell := range row {
					require.Len(t, cell.Paragraphs, 1)
					assert.True(t, cell.Paragraphs[0].IsEmpty())
				}
			}
			assert.Equal(t, rows == 0 || cols == 0, tbl.IsDegenerate())
		}
	}
}

func TestNewTableFromTextPadsRaggedRows(t *testing.T) {
	tbl := NewTableFromText([][]string{
		{"a", "b", "c"},
		{"d"},
	})

	require.Equal(t, 2, tbl.RowCount())
	require.Equal(t, 3, tbl.ColumnCount())
	assert.Equal(t, 6, tbl.CellCount())
	assert.Equal(t, "c", tbl.Rows[0][2].Paragraphs[0].Text())
	assert.Equal(t, "d", tbl.Rows[1][0].Paragraphs[0].Text())
	assert.True(t, tbl.Rows[1][2].Paragraphs[0].IsEmpty())
}

func TestDocumentImages(t *testing.T) {
	first := &Image{Data: []byte{1}, Width: 10, Height: 10}
	second := &Image{Data: []byte{2}, Width: 20, Height: 20}

	doc := NewDocument().
		Append(NewParagraph(ImageRun(first))).
		Append(NewParagraph(TextRun("between"))).
		Append(NewParagraph(ImageRun(second)))

	images := doc.Images()
	require.Len(t, images, 2)
	assert.Same(t, first, images[0])
	assert.Same(t, second, images[1])
}

func TestParagraphNumbering(t *testing.T) {
	p := NewParagraph(TextRun("item")).WithNumbering(BulletList, 0)
	require.NotNil(t, p.Numbering)
	assert.Equal(t, NumberingRef{ListID: 1, Level: 0}, *p.Numbering)

	p = NewParagraph(TextRun("item")).WithAlignment(AlignRight)
	assert.True(t, p.HasAlignment)
	assert.Equal(t, "right", p.Alignment.String())
}
