// Package docxgen builds DOCX documents incrementally.
//
// A Builder holds one document at a time. Each Add call appends a single
// block (a paragraph or a table) and reports success with a bool, logging the
// reason when it fails. Every Add method that can fail has an error-returning
// counterpart (AppendImageFile, AppendCustomTable, Finalize) for callers that
// want the typed error instead.
//
// Basic usage:
//
//	b := docxgen.New()
//	b.AddText("Hello")
//	b.AddFormattedText("Important", true, false, false, 14, "C00000")
//	b.AddBulletItem("first point")
//	b.AddTable(2, 3)
//	b.AddImage("chart.png", 400, 300)
//	if !b.GenerateDocx("report.docx") {
//	    // the failure has been logged
//	}
//
// Images larger than Config.CompressionThreshold bytes are decoded, shrunk to
// fit the requested display size and re-encoded as JPEG. When that fails the
// original bytes are embedded unchanged.
//
// After a successful GenerateDocx the Builder starts over with an empty
// document.
//
// # Configuration
//
// Defaults can be overridden with environment variables:
//
//	DOCXGEN_LOG_LEVEL              debug, info, warn, error or off
//	DOCXGEN_LOG_TAG                tag attached to every log line
//	DOCXGEN_COMPRESSION_THRESHOLD  bytes (default 500000)
//	DOCXGEN_JPEG_QUALITY           1-100 (default 75)
//	DOCXGEN_PAGE_SIZE              a4 or letter
//	DOCXGEN_RENDER_UNDERLINE       true to write underline formatting
//
// or loaded from YAML with LoadConfigFile. InitLogging installs the
// process-wide logger once.
package docxgen
