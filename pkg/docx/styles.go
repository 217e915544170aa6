package docx

import (
	"fmt"
	"strings"
)

// Heading sizes in half-points, indexed by level - 1.
// Level 1 renders at 16pt down to 12pt at level 4.
var headingHalfPoints = [MaxHeadingLevel]int{32, 28, 26, 24}

// stylesXML renders word/styles.xml with the document's default fonts baked
// into the Normal style. Word derives every other style from Normal unless
// the style overrides a property.
func (d *Document) stylesXML() string {
	var b strings.Builder

	font := escapeXML(d.opts.FontFamily)
	halfPoints := d.opts.FontSizePoints * 2

	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	// Document defaults.
	fmt.Fprintf(&b,
		`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr></w:rPrDefault></w:docDefaults>`,
		font, font, font, halfPoints, halfPoints)

	// Normal.
	fmt.Fprintf(&b,
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/><w:sz w:val="%d"/></w:rPr></w:style>`,
		font, font, font, halfPoints)

	// Heading1 through Heading4: bold, stepped sizes.
	for level := 1; level <= MaxHeadingLevel; level++ {
		fmt.Fprintf(&b,
			`<w:style w:type="paragraph" w:styleId="%s%d"><w:name w:val="heading %d"/><w:basedOn w:val="Normal"/><w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="%d"/></w:pPr><w:rPr><w:b/><w:sz w:val="%d"/></w:rPr></w:style>`,
			styleHeadingPrefix, level, level, level-1, headingHalfPoints[level-1])
	}

	// ListParagraph: indented body text; numbering comes from the paragraph.
	b.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720"/></w:pPr></w:style>`)

	// NoSpacing: code paragraphs, no inter-paragraph gaps.
	b.WriteString(`<w:style w:type="paragraph" w:styleId="NoSpacing"><w:name w:val="No Spacing"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:before="0" w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:style>`)

	b.WriteString(`</w:styles>`)
	return b.String()
}

// numberingXML defines two numbering schemes: ID 1 renders a bullet glyph,
// ID 2 renders a decimal counter. All list items sit at indent level zero;
// the converter emits no nested lists.
const numberingXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:lvl w:ilvl="0">
      <w:numFmt w:val="bullet"/>
      <w:lvlText w:val="&#8226;"/>
      <w:lvlJc w:val="left"/>
      <w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>
      <w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol" w:hint="default"/></w:rPr>
    </w:lvl>
  </w:abstractNum>
  <w:abstractNum w:abstractNumId="1">
    <w:lvl w:ilvl="0">
      <w:start w:val="1"/>
      <w:numFmt w:val="decimal"/>
      <w:lvlText w:val="%1."/>
      <w:lvlJc w:val="left"/>
      <w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>
    </w:lvl>
  </w:abstractNum>
  <w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
  <w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>
</w:numbering>`
