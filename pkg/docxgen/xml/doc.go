// Package xml provides WordprocessingML element structures for DOCX output.
//
// A DOCX file is a ZIP archive of XML parts. This package models the parts
// docxgen writes and marshals them with the conventional prefixes (w:, wp:,
// a:, pic:, r:) spelled out in the element names, so the encoded output matches
// what word processors expect byte for byte in structure.
//
// # Structure Organization
//
//   - types.go: the BodyElement interface, namespaces and shared helpers
//   - document.go: Document, Body and SectionProperties
//   - paragraph.go: Paragraph and its properties (style, numbering, alignment)
//   - run.go: Run, RunProperties and Text
//   - table.go: Table, TableRow, TableCell and their properties
//   - drawing.go: inline pictures (w:drawing / wp:inline)
//   - numbering.go: the numbering part (abstract list definitions)
//   - parts.go: package-level parts ([Content_Types].xml, relationships)
//   - styles.go: the styles and settings parts
//   - props.go: docProps/core.xml and docProps/app.xml
//
// # Usage
//
//	doc := &xml.Document{
//	    Body: &xml.Body{
//	        Elements: []xml.BodyElement{
//	            &xml.Paragraph{
//	                Runs: []xml.Run{
//	                    {Text: &xml.Text{Content: "Hello, world!"}},
//	                },
//	            },
//	        },
//	    },
//	}
//	data, err := doc.Bytes()
//
// The package only writes. Reading existing documents is not supported.
package xml
