// Package packager writes a model.Document as a DOCX package.
//
// A package is a ZIP archive holding the WordprocessingML parts a word
// processor needs to open the file:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml, docProps/app.xml
//	word/document.xml, word/_rels/document.xml.rels
//	word/styles.xml, word/numbering.xml, word/settings.xml
//	word/media/imageN.<ext>
//
// Everything is assembled in memory first, so Serialize either writes a
// complete archive or returns a *PartError before anything reaches w.
package packager
