// Package index builds the landing page for a directory of model analyses.
package index

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/aldehir/llm-analysis-index/internal/config"
	"github.com/aldehir/llm-analysis-index/internal/model"
	"github.com/aldehir/llm-analysis-index/internal/project"
	"github.com/aldehir/llm-analysis-index/internal/provenance"
	"github.com/aldehir/llm-analysis-index/internal/report"
	"github.com/aldehir/llm-analysis-index/internal/scan"
	"github.com/aldehir/llm-analysis-index/internal/timing"
)

var found = color.New(color.FgCyan).SprintFunc()

// BuilderConfig configures a Builder.
type BuilderConfig struct {
	Config    *config.Config
	Extractor provenance.Extractor
	Logger    *zap.Logger
	// Out receives progress lines. Nil discards them.
	Out io.Writer
	// Estimate times one analysis folder. Nil uses timing.ForDir.
	Estimate func(dir string) (timing.Estimate, error)
}

// Builder runs one scan of a target directory. It is not safe for concurrent use.
type Builder struct {
	cfg       *config.Config
	table     model.Table
	extractor provenance.Extractor
	logger    *zap.Logger
	out       io.Writer
	estimate  func(dir string) (timing.Estimate, error)
}

// NewBuilder creates a Builder. Missing fields fall back to defaults.
func NewBuilder(bc BuilderConfig) (*Builder, error) {
	cfg := bc.Config
	if cfg == nil {
		cfg = config.Default()
	}

	extractor := bc.Extractor
	if extractor == nil {
		e, err := provenance.New(cfg.Parser)
		if err != nil {
			return nil, err
		}
		extractor = e
	}

	logger := bc.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := bc.Out
	if out == nil {
		out = io.Discard
	}

	estimate := bc.Estimate
	if estimate == nil {
		estimate = timing.ForDir
	}

	return &Builder{
		cfg:       cfg,
		table:     cfg.Table(),
		extractor: extractor,
		logger:    logger,
		out:       out,
		estimate:  estimate,
	}, nil
}

// Build scans root and returns everything needed to render its index page.
// Only a bad root or an empty scan is fatal; per-folder problems are logged
// as warnings and the affected fields fall back to unknown.
func (b *Builder) Build(root string) (report.RenderContext, error) {
	b.logger.Debug("scanning", zap.String("root", root))

	folders, err := scan.Scan(root, b.cfg.ScanOptions())
	if err != nil {
		return report.RenderContext{}, err
	}

	info, err := b.projectInfo(root)
	if err != nil {
		return report.RenderContext{}, err
	}

	entries := make([]report.Entry, 0, len(folders))
	for _, f := range folders {
		entries = append(entries, b.entry(f))
	}
	report.SortEntries(entries)

	return report.RenderContext{
		Project:    info,
		Entries:    entries,
		LinkTarget: b.cfg.Marker,
	}, nil
}

// Generate builds the page for root and writes it into root. now becomes the
// page's generation timestamp. It returns the written path and entry count.
func (b *Builder) Generate(root string, now time.Time) (string, int, error) {
	rc, err := b.Build(root)
	if err != nil {
		return "", 0, err
	}
	rc.GeneratedAt = report.FormatTimestamp(now)

	fmt.Fprintf(b.out, "\nGenerating %s for %d analyses...\n", b.cfg.Output, len(rc.Entries))
	path, err := report.WriteIndex(root, b.cfg.Output, rc)
	if err != nil {
		return "", 0, err
	}
	return path, len(rc.Entries), nil
}

func (b *Builder) projectInfo(root string) (project.Info, error) {
	path, ok, err := scan.FindProjectFile(root)
	if err != nil {
		return project.Info{}, err
	}
	if !ok {
		b.logger.Warn("no .md file found, using default project info", zap.String("root", root))
		return project.Default(root), nil
	}

	fmt.Fprintf(b.out, "Found project description: %s\n", path)
	info, err := project.Read(path, b.cfg.DescriptionLimit)
	if err != nil {
		b.logger.Warn("could not read project description", zap.String("path", path), zap.Error(err))
	}
	return info, nil
}

// entry builds the index entry for one folder. It never fails.
func (b *Builder) entry(f scan.Folder) report.Entry {
	e := report.Entry{
		Folder:      f.Name,
		DisplayName: b.table.Normalize(f.Name),
		Duration:    timing.Unknown,
	}

	if f.HasProvenance() {
		fields, err := provenance.ExtractFile(b.extractor, f.ProvenancePath)
		if err != nil {
			b.logger.Warn("could not parse provenance file",
				zap.String("folder", f.Name),
				zap.String("path", f.ProvenancePath),
				zap.Error(err))
		}
		if fields.Model != "" {
			e.DisplayName = fields.Model
		}
		e.Provider = fields.Provider
		e.GeneratedAt = fields.Generated
	}

	e.Category = model.Classify(e.DisplayName)

	est, err := b.estimate(f.Path)
	if err != nil {
		b.logger.Warn("could not calculate duration", zap.String("folder", f.Name), zap.Error(err))
	} else {
		e.Duration = est.Label()
		e.Sections = est.Sections
	}

	fmt.Fprintf(b.out, "  Found analysis: %s (%s)\n", found(e.DisplayName), f.Name)
	if e.Duration != timing.Unknown {
		fmt.Fprintf(b.out, "    Duration: %s\n", e.Duration)
	}
	return e
}
