package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/tabula/docx"
	"github.com/tsawler/tabula/odt"
	"github.com/tsawler/tabula/reader"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// extractText routes a validated document to its format-specific extractor
// and returns raw (uncleaned) text plus the page count where the format has
// one.
func extractText(doc types.RawDocument) (string, int, error) {
	switch doc.MIMEType {
	case MimePDF:
		return extractPDF(doc)
	case MimeDoc, MimeDocx:
		return extractDOCX(doc)
	case MimeODT:
		return extractODT(doc)
	case MimeText:
		return string(doc.Content), 0, nil
	default:
		return "", 0, &ProcessingError{
			Type:     ErrProcessing,
			Message:  fmt.Sprintf("text extraction not implemented for %s", doc.MIMEType),
			FileName: doc.FileName,
		}
	}
}

// extractPDF pulls text from each page and joins pages with a newline.
func extractPDF(doc types.RawDocument) (string, int, error) {
	path, cleanup, err := writeTempFile(doc, ".pdf")
	if err != nil {
		return "", 0, err
	}
	defer cleanup()

	r, err := reader.Open(path)
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrCorruptedFile,
			Message:  "failed to open PDF",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	defer func() { _ = r.Close() }()

	pageCount, err := r.PageCount()
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to read PDF page tree",
			FileName: doc.FileName,
			Cause:    err,
		}
	}

	var pageTexts []string
	for i := 0; i < pageCount; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			return "", 0, &ProcessingError{
				Type:     ErrProcessing,
				Message:  fmt.Sprintf("failed to load page %d", i+1),
				FileName: doc.FileName,
				Cause:    err,
			}
		}
		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			return "", 0, &ProcessingError{
				Type:     ErrProcessing,
				Message:  fmt.Sprintf("failed to extract text from page %d", i+1),
				FileName: doc.FileName,
				Cause:    err,
			}
		}
		parts := make([]string, 0, len(fragments))
		for _, frag := range fragments {
			parts = append(parts, frag.Text)
		}
		pageTexts = append(pageTexts, strings.Join(parts, " "))
	}

	return strings.Join(pageTexts, "\n"), pageCount, nil
}

// extractDOCX reads a Word document. Legacy .doc uploads land here too; a
// byte stream that is not a valid OOXML container surfaces as CORRUPTED_FILE.
func extractDOCX(doc types.RawDocument) (string, int, error) {
	path, cleanup, err := writeTempFile(doc, ".docx")
	if err != nil {
		return "", 0, err
	}
	defer cleanup()

	r, err := docx.Open(path)
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrCorruptedFile,
			Message:  "failed to open Word document",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	defer func() { _ = r.Close() }()

	text, err := r.Text()
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to extract text from Word document",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	return text, 0, nil
}

func extractODT(doc types.RawDocument) (string, int, error) {
	path, cleanup, err := writeTempFile(doc, ".odt")
	if err != nil {
		return "", 0, err
	}
	defer cleanup()

	r, err := odt.Open(path)
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrCorruptedFile,
			Message:  "failed to open ODT document",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	defer func() { _ = r.Close() }()

	text, err := r.Text()
	if err != nil {
		return "", 0, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to extract text from ODT document",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	return text, 0, nil
}

// writeTempFile persists the document bytes so file-based extractors can
// read them. The returned cleanup removes the file.
func writeTempFile(doc types.RawDocument, ext string) (string, func(), error) {
	f, err := os.CreateTemp("", "syllabus-*"+ext)
	if err != nil {
		return "", nil, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to create temporary file",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.Write(doc.Content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to write temporary file",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, &ProcessingError{
			Type:     ErrProcessing,
			Message:  "failed to close temporary file",
			FileName: doc.FileName,
			Cause:    err,
		}
	}
	return path, cleanup, nil
}
