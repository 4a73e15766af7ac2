package document

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/syllabus-agent/internal/types"
)

// DefaultMaxBatchFiles is the batch size ceiling.
const DefaultMaxBatchFiles = 5

// DefaultMaxInFlight bounds concurrent normalization within a batch.
const DefaultMaxInFlight = 3

// BatchOptions configures batch validation and processing.
type BatchOptions struct {
	MaxFiles    int
	MaxInFlight int
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.MaxFiles <= 0 {
		o.MaxFiles = DefaultMaxBatchFiles
	}
	if o.MaxInFlight <= 0 {
		o.MaxInFlight = DefaultMaxInFlight
	}
	return o
}

// ValidateBatch applies per-file validation to a set of documents.
// Documents beyond MaxFiles are dropped with a single aggregate warning;
// every accepted document is validated independently.
func (n *Normalizer) ValidateBatch(docs []types.RawDocument, opts BatchOptions) types.BatchValidation {
	opts = opts.withDefaults()

	result := types.BatchValidation{}
	if len(docs) > opts.MaxFiles {
		result.Errors = append(result.Errors,
			fmt.Sprintf("maximum %d files allowed, only the first %d files will be processed", opts.MaxFiles, opts.MaxFiles))
		docs = docs[:opts.MaxFiles]
	}

	for _, doc := range docs {
		if perr := n.Validate(doc); perr != nil {
			result.Invalid = append(result.Invalid, doc)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", doc.FileName, perr.Message))
			continue
		}
		result.Valid = append(result.Valid, doc)
		result.TotalSize += doc.Size
	}
	return result
}

// ProcessBatch normalizes documents concurrently, up to MaxInFlight at a
// time. Runs share no mutable state; each document's success or failure is
// independently attributable via its generated item ID. No ordering is
// guaranteed across documents.
func (n *Normalizer) ProcessBatch(ctx context.Context, docs []types.RawDocument, opts BatchOptions) *types.BatchResult {
	opts = opts.withDefaults()

	result := &types.BatchResult{TotalProcessed: len(docs)}
	if len(docs) > opts.MaxFiles {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("maximum %d files allowed, only the first %d files will be processed", opts.MaxFiles, opts.MaxFiles))
		docs = docs[:opts.MaxFiles]
		result.TotalProcessed = len(docs)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxInFlight)

	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			itemID := uuid.New().String()
			content, err := n.Process(doc)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				var perr *ProcessingError
				if !errors.As(err, &perr) {
					perr = &ProcessingError{Type: ErrProcessing, Message: err.Error(), FileName: doc.FileName}
				}
				result.Failed = append(result.Failed, types.BatchItemFailure{
					ItemID:   itemID,
					FileName: doc.FileName,
					Type:     string(perr.Type),
					Message:  perr.Message,
				})
				return nil
			}
			result.Successful = append(result.Successful, *content)
			return nil
		})
	}

	// Per-document failures are recorded, not returned, so the only group
	// error is context cancellation.
	if err := g.Wait(); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("batch cancelled: %v", err))
	}
	return result
}

// Stats aggregates processing statistics for a set of normalized documents.
type Stats struct {
	TotalFiles          int            `json:"total_files"`
	TotalSize           int64          `json:"total_size"`
	TotalWords          int            `json:"total_words"`
	AverageWordsPerFile int            `json:"average_words_per_file"`
	Kinds               map[string]int `json:"kinds"`
	FileTypes           map[string]int `json:"file_types"`
}

// ComputeStats summarizes a batch of normalized content.
func ComputeStats(results []types.NormalizedContent) Stats {
	stats := Stats{
		TotalFiles: len(results),
		Kinds:      make(map[string]int),
		FileTypes:  make(map[string]int),
	}
	for _, r := range results {
		stats.TotalSize += r.Metadata.Size
		stats.TotalWords += r.Metadata.WordCount
		stats.Kinds[string(r.Kind)]++
		stats.FileTypes[r.Metadata.MIMEType]++
	}
	if stats.TotalFiles > 0 {
		stats.AverageWordsPerFile = stats.TotalWords / stats.TotalFiles
	}
	return stats
}
