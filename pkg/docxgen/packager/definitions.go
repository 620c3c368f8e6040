package packager

import (
	"fmt"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/model"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/xml"
)

const (
	styleNormal        = "Normal"
	styleListParagraph = "ListParagraph"
	styleTableNormal   = "TableNormal"
	styleTableGrid     = "TableGrid"
)

func defaultStyles() *xml.Styles {
	return &xml.Styles{
		DefaultFont: "Calibri",
		DefaultSize: 22,
		Styles: []xml.StyleDefinition{
			{Type: "paragraph", ID: styleNormal, Name: "Normal", IsDefault: true},
			{
				Type:      "paragraph",
				ID:        styleListParagraph,
				Name:      "List Paragraph",
				BasedOn:   styleNormal,
				Paragraph: &xml.ParagraphProperties{Indentation: &xml.Indentation{Left: 720}},
			},
			{Type: "table", ID: styleTableNormal, Name: "Normal Table", IsDefault: true},
			{
				Type:    "table",
				ID:      styleTableGrid,
				Name:    "Table Grid",
				BasedOn: styleTableNormal,
				Table:   &xml.TableProperties{Borders: xml.SingleBorders()},
			},
		},
	}
}

// Each list definition carries the nine levels WordprocessingML allows.
const listLevels = 9

var (
	bulletGlyphs  = []string{"•", "o", "▪"}
	numberFormats = []string{"decimal", "lowerLetter", "lowerRoman"}
)

// defaultNumbering defines the two predefined lists. numId 1 is the bullet
// list and numId 2 the numbered list, matching model.BulletList and
// model.NumberedList.
func defaultNumbering() *xml.Numbering {
	bullet := xml.AbstractNum{ID: 0}
	decimal := xml.AbstractNum{ID: 1}
	for lvl := 0; lvl < listLevels; lvl++ {
		indent := xml.Indentation{Left: 720 * (lvl + 1), Hanging: 360}
		bullet.Levels = append(bullet.Levels, xml.Level{
			Ilvl:   lvl,
			Start:  1,
			Format: "bullet",
			Text:   bulletGlyphs[lvl%len(bulletGlyphs)],
			Indent: indent,
		})
		decimal.Levels = append(decimal.Levels, xml.Level{
			Ilvl:   lvl,
			Start:  1,
			Format: numberFormats[lvl%len(numberFormats)],
			Text:   fmt.Sprintf("%%%d.", lvl+1),
			Indent: indent,
		})
	}

	return &xml.Numbering{
		AbstractNums: []xml.AbstractNum{bullet, decimal},
		Nums: []xml.Num{
			{NumID: model.BulletList, AbstractNumID: bullet.ID},
			{NumID: model.NumberedList, AbstractNumID: decimal.ID},
		},
	}
}
