// Package convert runs the end-to-end Markdown to .docx conversion:
// read input, classify lines, assemble the document, write output.
package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/md2docx/internal/logging"
	"github.com/yaklabco/md2docx/pkg/docx"
	"github.com/yaklabco/md2docx/pkg/fsutil"
	"github.com/yaklabco/md2docx/pkg/langdetect"
	"github.com/yaklabco/md2docx/pkg/mdscan"
	"github.com/yaklabco/md2docx/pkg/preflight"
)

// ErrUnsupportedConstructs is returned in strict mode when the input uses
// Markdown the converter would flatten. No output file is written.
var ErrUnsupportedConstructs = errors.New("input uses unsupported markdown constructs")

// Options configures a single conversion.
type Options struct {
	// InputPath is the Markdown file to read.
	InputPath string

	// OutputPath is the .docx file to write. Overwritten if present.
	OutputPath string

	// Document configures output document styling.
	Document docx.Options

	// DetectLanguages tags code fences that lack an info string.
	DetectLanguages bool

	// Strict fails the conversion when preflight finds unsupported
	// constructs instead of flattening them.
	Strict bool
}

// Stats captures aggregate information about a conversion.
type Stats struct {
	// Lines is the number of source lines read.
	Lines int

	// BlocksTotal is the number of blocks emitted to the document.
	BlocksTotal int

	// BlocksByKind maps block kind names to counts.
	BlocksByKind map[string]int

	// Languages maps code-block language tags to counts.
	Languages map[string]int

	// BytesIn is the input file size.
	BytesIn int64

	// BytesOut is the serialized document size.
	BytesOut int

	// Duration is the wall-clock conversion time.
	Duration time.Duration
}

// Result is the outcome of a successful conversion.
type Result struct {
	// InputPath and OutputPath echo the resolved paths.
	InputPath  string
	OutputPath string

	// Stats contains aggregate statistics for the conversion.
	Stats Stats

	// Findings lists unsupported constructs preflight spotted (non-strict
	// runs proceed anyway; the findings are informational).
	Findings []preflight.Finding
}

// Run performs one conversion. It is synchronous and owns its document
// exclusively; the only blocking operations are the initial read and the
// final atomic write.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	content, info, err := fsutil.ReadFile(ctx, opts.InputPath)
	if err != nil {
		return nil, err
	}

	findings, err := preflight.Check(content)
	if err != nil {
		return nil, fmt.Errorf("preflight %s: %w", opts.InputPath, err)
	}
	for _, finding := range findings {
		logger.Debug("unsupported construct",
			logging.FieldConstructs, finding.Construct,
			logging.FieldLine, finding.Line,
		)
	}
	if opts.Strict && len(findings) > 0 {
		return nil, fmt.Errorf("%w: %d found (first: %s on line %d)",
			ErrUnsupportedConstructs, len(findings), findings[0].Construct, findings[0].Line)
	}

	blocks := mdscan.Scan(content)

	doc := docx.New(opts.Document)
	stats := Stats{
		Lines:        len(mdscan.SplitLines(content)),
		BlocksByKind: make(map[string]int),
		Languages:    make(map[string]int),
		BytesIn:      info.Size,
	}

	for _, block := range blocks {
		emit(doc, block, opts, &stats, logger)
	}
	stats.BlocksTotal = len(blocks)

	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	stats.BytesOut = len(data)

	if err := fsutil.WriteAtomic(ctx, opts.OutputPath, data, 0); err != nil {
		return nil, fmt.Errorf("write %s: %w", opts.OutputPath, err)
	}

	stats.Duration = time.Since(start)

	logger.Debug("conversion complete",
		logging.FieldInput, opts.InputPath,
		logging.FieldOutput, opts.OutputPath,
		logging.FieldLines, stats.Lines,
		logging.FieldBlocks, stats.BlocksTotal,
		logging.FieldBytesOut, stats.BytesOut,
	)

	return &Result{
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Stats:      stats,
		Findings:   findings,
	}, nil
}

// emit appends one scanned block to the document and updates stats.
func emit(doc *docx.Document, block mdscan.Block, opts Options, stats *Stats, logger *log.Logger) {
	stats.BlocksByKind[block.Kind.String()]++

	switch block.Kind {
	case mdscan.KindHeading:
		doc.AddHeading(block.Level, block.Text)

	case mdscan.KindParagraph:
		para := doc.AddParagraph()
		for _, run := range block.Runs {
			if run.Code {
				para.AddCodeRun(run.Text)
			} else {
				para.AddRun(run.Text)
			}
		}

	case mdscan.KindBullet:
		doc.AddListItem(block.Text, false)

	case mdscan.KindNumber:
		doc.AddListItem(block.Text, true)

	case mdscan.KindCode:
		language := langdetect.FromInfoString(block.Language)
		if language == "" && opts.DetectLanguages {
			language = langdetect.Detect([]byte(block.Text))
		}
		if language != "" {
			stats.Languages[language]++
			logger.Debug("code block",
				logging.FieldLine, block.Line,
				logging.FieldLanguage, language,
			)
		}
		doc.AddCodeBlock(block.Text)
	}
}
