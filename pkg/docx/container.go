package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// Part names inside the OPC container.
const (
	partContentTypes = "[Content_Types].xml"
	partRootRels     = "_rels/.rels"
	partDocumentRels = "word/_rels/document.xml.rels"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>
</Relationships>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr></w:body></w:document>`

// Write serializes the document as a .docx container to w.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{partContentTypes, contentTypesXML},
		{partRootRels, rootRelsXML},
		{partDocumentRels, documentRelsXML},
		{partDocument, documentHeader + d.bodyXML() + documentFooter},
		{partStyles, d.stylesXML()},
		{partNumbering, numberingXML},
	}

	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", part.name, err)
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize container: %w", err)
	}
	return nil
}

// Bytes serializes the document and returns the .docx container bytes.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
