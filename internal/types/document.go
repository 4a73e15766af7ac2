package types

// ContentKind discriminates the two normalized content representations.
type ContentKind string

// Content kinds produced by the document normalizer.
const (
	KindText  ContentKind = "text"
	KindImage ContentKind = "image"
)

// RawDocument is a caller-supplied input file. The normalizer never mutates
// it; Content is read exactly once.
type RawDocument struct {
	Content  []byte
	FileName string
	MIMEType string
	Size     int64
}

// DocumentMetadata describes a normalized document.
type DocumentMetadata struct {
	OriginalName string `json:"original_name"`
	MIMEType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	PageCount    int    `json:"page_count,omitempty"`
	WordCount    int    `json:"word_count"`
}

// NormalizedContent is the tagged union produced by the normalizer: either
// cleaned plain text or a base64 data URL for multimodal consumption.
type NormalizedContent struct {
	Kind           ContentKind      `json:"kind"`
	Text           string           `json:"text,omitempty"`
	EncodedPayload string           `json:"encoded_payload,omitempty"`
	Metadata       DocumentMetadata `json:"metadata"`
}

// BatchValidation summarizes up-front validation of a set of documents.
type BatchValidation struct {
	Valid     []RawDocument
	Invalid   []RawDocument
	Errors    []string
	TotalSize int64
}

// BatchItemFailure attributes a normalization failure to one batch document.
type BatchItemFailure struct {
	ItemID   string `json:"item_id"`
	FileName string `json:"file_name"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// BatchResult holds the independently attributable outcomes of a batch run.
type BatchResult struct {
	Successful     []NormalizedContent `json:"successful"`
	Failed         []BatchItemFailure  `json:"failed"`
	TotalProcessed int                 `json:"total_processed"`
	Warnings       []string            `json:"warnings,omitempty"`
}
