// File: pkg/combine/execute.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"projctx/pkg/charset"
)

// Combiner turns a directory tree into a Document.
type Combiner struct {
	cfg    Config
	fs     billy.Filesystem
	detect charset.Detector
	reader *Reader
	logger *zap.Logger
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithFilesystem sets the filesystem that is walked. Defaults to the OS filesystem.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(c *Combiner) { c.fs = fsys }
}

// WithDetector sets the charset detector used after UTF-8 fails. Defaults to charset.UTF8.
func WithDetector(d charset.Detector) Option {
	return func(c *Combiner) { c.detect = d }
}

// New creates a Combiner for cfg.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Combiner {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Combiner{cfg: cfg, fs: hostFS(), logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	c.reader = NewReader(c.fs, c.detect, logger)
	return c
}

// Stats counts what happened to the files seen during a build.
type Stats struct {
	Included int // Files emitted.
	Filtered int // Files rejected by the name/extension rules.
	Failed   int // Included files that could not be read.
}

// Collect walks root and reads every included file, in traversal order.
func (c *Combiner) Collect(root string) ([]FileRecord, Stats, error) {
	var records []FileRecord
	var stats Stats

	err := Walk(c.fs, root, c.cfg, c.logger, func(dir string, files []os.FileInfo) error {
		for _, info := range files {
			name := info.Name()
			rel := filepath.Join(dir, name)

			if d, reason := c.cfg.Classify(name); d == Exclude {
				stats.Filtered++
				c.logger.Debug("Skipping file", zap.String("file", filepath.ToSlash(rel)), zap.String("reason", string(reason)))
				continue
			}

			content, enc, err := c.reader.Read(c.fs.Join(root, rel))
			if err != nil {
				stats.Failed++
				c.logger.Warn("Could not read file, skipping", zap.String("file", filepath.ToSlash(rel)), zap.Error(err))
				continue
			}

			c.logger.Debug("Processed file", zap.String("file", filepath.ToSlash(rel)), zap.String("encoding", enc))
			records = append(records, FileRecord{
				Path:     filepath.ToSlash(rel),
				Language: c.cfg.Language(name),
				Content:  content,
				Encoding: enc,
			})
			stats.Included++
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return records, stats, nil
}

// Build assembles the Document for root. header is written first when
// non-empty; tree adds a listing of the emitted files after it.
func (c *Combiner) Build(root, header string, tree bool) (*Document, Stats, error) {
	records, stats, err := c.Collect(root)
	if err != nil {
		return nil, stats, err
	}

	doc := &Document{}
	if header != "" {
		doc.WriteHeader(header)
	}
	if tree {
		paths := make([]string, len(records))
		for i, rec := range records {
			paths[i] = rec.Path
		}
		doc.WriteHeader(Tree(paths))
	}
	for _, rec := range records {
		doc.Append(rec)
	}
	return doc, stats, nil
}

// hostFS is the OS filesystem rooted at "/", addressed with absolute paths.
func hostFS() billy.Filesystem {
	return osfs.New("/")
}

// Result summarises a completed run.
type Result struct {
	Output    string // Absolute path of the written document.
	Files     int    // Number of file sections.
	Skipped   int    // Included files that could not be read.
	SizeBytes int64  // Size of the written document.
	Large     bool   // SizeBytes exceeds the warning threshold.
}

// RunCombine scans args.Directory and writes the document to args.Output.
// Nothing is written when the directory is missing or not a directory.
func RunCombine(args *Arguments, logger *zap.Logger) (Result, error) {
	return runCombine(args, DefaultConfig(), hostFS(), logger)
}

func runCombine(args *Arguments, cfg Config, fsys billy.Filesystem, logger *zap.Logger) (Result, error) {
	startTime := time.Now()

	root, err := filepath.Abs(args.Directory)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	output, err := filepath.Abs(args.Output)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}
	logger.Info("Starting scan of directory", zap.String("directory", root))

	var detect charset.Detector = charset.UTF8
	if args.DetectEncoding {
		detect = charset.Statistical()
	}
	c := New(cfg, logger, WithFilesystem(fsys), WithDetector(detect))

	var header string
	if args.Header {
		header = Header(root)
	}
	doc, stats, err := c.Build(root, header, args.Tree)
	if err != nil {
		return Result{}, err
	}

	size, err := WriteDocument(output, doc, logger)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Output:    output,
		Files:     stats.Included,
		Skipped:   stats.Failed,
		SizeBytes: size,
		Large:     args.WarnSizeKB > 0 && size > int64(args.WarnSizeKB)*1024,
	}
	logger.Info("Combination process completed",
		zap.String("outputFile", output),
		zap.Int("totalFiles", stats.Included),
		zap.Int("filteredFiles", stats.Filtered),
		zap.Int("unreadableFiles", stats.Failed),
		zap.Int64("sizeBytes", size),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}
