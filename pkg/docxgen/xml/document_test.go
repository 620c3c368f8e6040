package xml

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

func encodeString(t *testing.T, v any) string {
	t.Helper()
	data, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return string(data)
}

func TestEncodeWritesHeader(t *testing.T) {
	out := encodeString(t, &Document{})
	if !strings.HasPrefix(out, Header) {
		t.Errorf("missing XML declaration, got %q", out[:40])
	}
	if !strings.Contains(out, `<w:document xmlns:w="`+NamespaceW+`"`) {
		t.Errorf("missing w:document root with namespace: %s", out)
	}
	if !strings.Contains(out, "<w:body></w:body>") {
		t.Errorf("nil body should encode as empty w:body: %s", out)
	}
}

func TestBodyPreservesElementOrder(t *testing.T) {
	body := &Body{
		Elements: []BodyElement{
			&Paragraph{Runs: []Run{{Text: &Text{Content: "first"}}}},
			&Table{Rows: []TableRow{{Cells: []TableCell{{}}}}},
			&Paragraph{Runs: []Run{{Text: &Text{Content: "last"}}}},
		},
		SectionProperties: &SectionProperties{PageWidth: 11906, PageHeight: 16838, Margin: 1440},
	}
	out := encodeString(t, &Document{Body: body})

	first := strings.Index(out, "first")
	tbl := strings.Index(out, "<w:tbl>")
	last := strings.Index(out, "last")
	sect := strings.Index(out, "<w:sectPr>")
	if first < 0 || tbl < 0 || last < 0 || sect < 0 {
		t.Fatalf("missing element in output: %s", out)
	}
	if !(first < tbl && tbl < last && last < sect) {
		t.Errorf("elements out of order: first=%d tbl=%d last=%d sect=%d", first, tbl, last, sect)
	}
	if !strings.Contains(out, `<w:pgSz w:w="11906" w:h="16838"></w:pgSz>`) {
		t.Errorf("page size not written: %s", out)
	}
}

func TestParagraphProperties(t *testing.T) {
	tests := []struct {
		name     string
		props    *ParagraphProperties
		contains []string
		absent   []string
	}{
		{
			name:   "nil properties",
			props:  nil,
			absent: []string{"<w:pPr>"},
		},
		{
			name:   "empty properties are skipped",
			props:  &ParagraphProperties{},
			absent: []string{"<w:pPr>"},
		},
		{
			name:     "alignment",
			props:    &ParagraphProperties{Alignment: &Alignment{Val: "center"}},
			contains: []string{`<w:pPr><w:jc w:val="center"></w:jc></w:pPr>`},
		},
		{
			name: "numbering before alignment",
			props: &ParagraphProperties{
				Style:     &Style{Val: "ListParagraph"},
				Numbering: &NumberingProperties{Level: 0, NumID: 2},
				Alignment: &Alignment{Val: "both"},
			},
			contains: []string{
				`<w:pStyle w:val="ListParagraph"></w:pStyle><w:numPr><w:ilvl w:val="0"></w:ilvl><w:numId w:val="2"></w:numId></w:numPr><w:jc w:val="both"></w:jc>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := encodeString(t, &Paragraph{Properties: tt.props})
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestRunProperties(t *testing.T) {
	run := Run{
		Properties: &RunProperties{
			Bold:      &Empty{},
			Italic:    &Empty{},
			Color:     &Color{Val: "FF0000"},
			Size:      &Size{Val: 28},
			SizeCs:    &Size{Val: 28},
			Underline: &UnderlineStyle{Val: "single"},
		},
		Text: &Text{Content: " padded "},
	}
	out := encodeString(t, &run)

	want := `<w:rPr><w:b></w:b><w:i></w:i><w:color w:val="FF0000"></w:color><w:sz w:val="28"></w:sz><w:szCs w:val="28"></w:szCs><w:u w:val="single"></w:u></w:rPr>`
	if !strings.Contains(out, want) {
		t.Errorf("run properties out of schema order\n got: %s\nwant: %s", out, want)
	}
	if !strings.Contains(out, `<w:t xml:space="preserve"> padded </w:t>`) {
		t.Errorf("text should preserve whitespace: %s", out)
	}
}

func TestTextEscaping(t *testing.T) {
	out := encodeString(t, &Run{Text: &Text{Content: `a < b & "c"`}})
	if !strings.Contains(out, "a &lt; b &amp; &#34;c&#34;") {
		t.Errorf("text not escaped: %s", out)
	}
}

func TestTableCellWithoutParagraphs(t *testing.T) {
	cell := TableCell{Properties: &TableCellProperties{Width: &Width{Type: "dxa", Val: 3000}}}
	out := encodeString(t, &cell)
	if !strings.Contains(out, `<w:tcW w:w="3000" w:type="dxa"></w:tcW>`) {
		t.Errorf("cell width missing: %s", out)
	}
	if !strings.Contains(out, "<w:p></w:p>") {
		t.Errorf("cell must contain at least one paragraph: %s", out)
	}
}

func TestInlinePicture(t *testing.T) {
	d := NewInlinePicture(3, "Picture 3", "rId7", 100, 50)
	if d.Width != 952500 || d.Height != 476250 {
		t.Fatalf("extent = %dx%d EMU, want 952500x476250", d.Width, d.Height)
	}

	out := encodeString(t, &Run{Drawing: d})
	for _, want := range []string{
		`<w:drawing><wp:inline`,
		`<wp:extent cx="952500" cy="476250"></wp:extent>`,
		`<wp:docPr id="3" name="Picture 3"></wp:docPr>`,
		`<a:graphicData uri="` + NamespacePic + `">`,
		`<a:blip r:embed="rId7"></a:blip>`,
		`<a:ext cx="952500" cy="476250"></a:ext>`,
		`</wp:inline></w:drawing></w:r>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("drawing missing %q\n%s", want, out)
		}
	}

	// The fragment must be well formed.
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			if err != io.EOF {
				t.Errorf("drawing is not well formed: %v", err)
			}
			break
		}
	}
}

func TestNumberingOrder(t *testing.T) {
	n := Numbering{
		AbstractNums: []AbstractNum{
			{ID: 0, Levels: []Level{{Start: 1, Format: "bullet", Text: "•", Indent: Indentation{Left: 720, Hanging: 360}}}},
			{ID: 1, Levels: []Level{{Start: 1, Format: "decimal", Text: "%1.", Indent: Indentation{Left: 720, Hanging: 360}}}},
		},
		Nums: []Num{{NumID: 1, AbstractNumID: 0}, {NumID: 2, AbstractNumID: 1}},
	}
	out := encodeString(t, &n)

	lastAbstract := strings.LastIndex(out, "<w:abstractNum ")
	firstNum := strings.Index(out, "<w:num ")
	if lastAbstract < 0 || firstNum < 0 || lastAbstract > firstNum {
		t.Errorf("abstractNum definitions must precede num instances: %s", out)
	}
	for _, want := range []string{
		`<w:numFmt w:val="bullet"></w:numFmt>`,
		`<w:lvlText w:val="%1."></w:lvlText>`,
		`<w:ind w:left="720" w:hanging="360"></w:ind>`,
		`<w:num w:numId="2"><w:abstractNumId w:val="1"></w:abstractNumId></w:num>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("numbering missing %q", want)
		}
	}
}

func TestRelationshipsNextID(t *testing.T) {
	rels := NewRelationships()
	if got := rels.NextID(); got != "rId1" {
		t.Errorf("NextID() on empty set = %s, want rId1", got)
	}

	rels.Relationship = append(rels.Relationship,
		Relationship{ID: "rId4", Type: RelTypeStyles, Target: "styles.xml"},
		Relationship{ID: "custom", Type: RelTypeSettings, Target: "settings.xml"},
	)
	if got := rels.Add(RelTypeImage, "media/image1.png"); got != "rId5" {
		t.Errorf("Add() = %s, want rId5", got)
	}
	if got := rels.NextID(); got != "rId6" {
		t.Errorf("NextID() = %s, want rId6", got)
	}
}

func TestContentTypesAddDefault(t *testing.T) {
	ct := NewContentTypes()
	ct.AddDefault("png", "image/png")
	ct.AddDefault(".PNG", "image/png")
	ct.AddDefault("jpeg", "image/jpeg")
	ct.AddOverride("/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml")

	if len(ct.Defaults) != 4 {
		t.Errorf("len(Defaults) = %d, want 4 (rels, xml, png, jpeg)", len(ct.Defaults))
	}

	out := encodeString(t, ct)
	for _, want := range []string{
		`<Types xmlns="` + NamespaceContentTypes + `">`,
		`<Default Extension="png" ContentType="image/png"></Default>`,
		`<Override PartName="/word/document.xml"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("content types missing %q\n%s", want, out)
		}
	}
}

func TestStylesAndSettings(t *testing.T) {
	styles := Styles{
		DefaultFont: "Calibri",
		DefaultSize: 22,
		Styles: []StyleDefinition{
			{Type: "paragraph", ID: "Normal", Name: "Normal", IsDefault: true},
			{Type: "paragraph", ID: "ListParagraph", Name: "List Paragraph", BasedOn: "Normal",
				Paragraph: &ParagraphProperties{Indentation: &Indentation{Left: 720}}},
		},
	}
	out := encodeString(t, &styles)
	for _, want := range []string{
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">`,
		`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"></w:name><w:basedOn w:val="Normal"></w:basedOn>`,
		`<w:sz w:val="22"></w:sz>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("styles missing %q\n%s", want, out)
		}
	}

	settings := encodeString(t, &Settings{})
	if !strings.Contains(settings, `<w:defaultTabStop w:val="720"></w:defaultTabStop>`) {
		t.Errorf("default tab stop missing: %s", settings)
	}
}
