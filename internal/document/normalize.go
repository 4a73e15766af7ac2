// Package document converts caller-supplied syllabus files into normalized
// pipeline content: cleaned plain text for documents, base64 data URLs for
// raster images. Every failure is a typed *ProcessingError; nothing in this
// package performs network I/O except the optional URL ingestion path.
package document

import (
	"encoding/base64"
	"fmt"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// DefaultMaxFileSize is the upload size ceiling (10 MiB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// MIME types accepted by the normalizer.
const (
	MimePDF  = "application/pdf"
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeODT  = "application/vnd.oasis.opendocument.text"
	MimeText = "text/plain"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
)

// SupportedTypes is the set of media types the normalizer accepts.
var SupportedTypes = map[string]bool{
	MimePDF:  true,
	MimeDoc:  true,
	MimeDocx: true,
	MimeODT:  true,
	MimeText: true,
	MimeJPEG: true,
	MimePNG:  true,
	MimeGIF:  true,
}

var imageTypes = map[string]bool{
	MimeJPEG: true,
	MimePNG:  true,
	MimeGIF:  true,
}

// Options configures the normalizer.
type Options struct {
	// MaxFileSize is the per-file byte ceiling; zero means DefaultMaxFileSize.
	MaxFileSize int64
}

// Normalizer converts RawDocuments into NormalizedContent.
type Normalizer struct {
	maxFileSize int64
}

// NewNormalizer creates a Normalizer with the given options.
func NewNormalizer(opts Options) *Normalizer {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Normalizer{maxFileSize: maxSize}
}

// Validate checks size and media-type preconditions without inspecting the
// document bytes. It runs before any format-specific work.
func (n *Normalizer) Validate(doc types.RawDocument) *ProcessingError {
	if doc.Size == 0 {
		return &ProcessingError{
			Type:     ErrEmptyFile,
			Message:  "file appears to be empty",
			FileName: doc.FileName,
		}
	}
	if doc.Size > n.maxFileSize {
		return &ProcessingError{
			Type: ErrFileTooLarge,
			Message: fmt.Sprintf("file is too large (%.1fMB), maximum size is %dMB",
				float64(doc.Size)/(1024*1024), n.maxFileSize/(1024*1024)),
			FileName: doc.FileName,
		}
	}
	if !SupportedTypes[doc.MIMEType] {
		return &ProcessingError{
			Type:     ErrUnsupportedFile,
			Message:  fmt.Sprintf("file type %s is not supported, use PDF, Word documents, plain text, or images", doc.MIMEType),
			FileName: doc.FileName,
		}
	}
	return nil
}

// Process validates the document and routes it to the appropriate extractor.
// Raster images are not text-extracted; they become base64 data URLs for the
// downstream vision model.
func (n *Normalizer) Process(doc types.RawDocument) (*types.NormalizedContent, error) {
	if perr := n.Validate(doc); perr != nil {
		return nil, perr
	}

	meta := types.DocumentMetadata{
		OriginalName: doc.FileName,
		MIMEType:     doc.MIMEType,
		Size:         doc.Size,
	}

	if imageTypes[doc.MIMEType] {
		return &types.NormalizedContent{
			Kind:           types.KindImage,
			EncodedPayload: encodeDataURL(doc.MIMEType, doc.Content),
			Metadata:       meta,
		}, nil
	}

	text, pageCount, err := extractText(doc)
	if err != nil {
		return nil, err
	}

	cleaned := CleanExtractedText(text)
	meta.PageCount = pageCount
	meta.WordCount = CountWords(cleaned)

	return &types.NormalizedContent{
		Kind:     types.KindText,
		Text:     cleaned,
		Metadata: meta,
	}, nil
}

// encodeDataURL produces the data URL payload consumed by the vision route.
func encodeDataURL(mimeType string, content []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))
}
