package infrastructure

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/sirupsen/logrus"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

const rawTextLimit = 10000

// ExtractTextFromFile extracts text from candidate attachments (PDF, DOCX,
// TXT). Unknown types fall back to truncated raw content.
func ExtractTextFromFile(file multipart.File, filename string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = strings.ToLower(filename[idx+1:])
	}

	switch ext {
	case "txt":
		return string(data), nil
	case "pdf":
		return extractTextFromPDF(data)
	case "docx":
		return extractTextFromDocx(data)
	default:
		if len(data) > rawTextLimit {
			data = data[:rawTextLimit] // Truncate very long content
		}
		return string(data), nil
	}
}

// extractTextFromPDF extracts text from PDF files using unipdf, page by
// page, skipping pages that fail.
func extractTextFromPDF(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var textBuilder strings.Builder
	extractedAnyText := false

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			logrus.Warnf("error getting page %d: %v", i, err)
			continue
		}

		ex, err := extractor.New(page)
		if err != nil {
			logrus.Warnf("error creating extractor for page %d: %v", i, err)
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			logrus.Warnf("error extracting text from page %d: %v", i, err)
			continue
		}

		if pageText != "" {
			extractedAnyText = true
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(textBuilder.String())
	if !extractedAnyText {
		return "", fmt.Errorf("no text could be extracted from any page of the PDF")
	}
	return result, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractTextFromDocx parses the document and strips the WordprocessingML
// markup from its content.
func extractTextFromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return strings.TrimSpace(content), nil
}
