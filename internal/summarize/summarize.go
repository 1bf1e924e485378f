// Package summarize turns a build log and a CTest log into a Markdown job summary.
package summarize

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AndreyAkinshin/jobsummary/internal/errors"
	"github.com/AndreyAkinshin/jobsummary/internal/logfile"
	"github.com/AndreyAkinshin/jobsummary/internal/report"
	"github.com/AndreyAkinshin/jobsummary/internal/testparser"
	"github.com/AndreyAkinshin/jobsummary/internal/warnings"
)

// Options configures a single summarize run.
type Options struct {
	BuildLogPath string
	TestLogPath  string
	OutputPath   string

	// Append adds the report to OutputPath instead of replacing it.
	Append bool

	Environment report.Environment

	// Extractor scans the build log. Nil means the default extractor.
	Extractor *warnings.Extractor
	// TestParser counts test results. Nil means CTest.
	TestParser testparser.Parser
}

// Result holds everything extracted during a run.
type Result struct {
	Histogram *warnings.Histogram
	Excerpt   testparser.Excerpt
	Counts    testparser.TestCounts
	Report    string
}

// Run reads both logs, extracts warnings and test results, and writes the
// assembled report to opts.OutputPath. Nothing is written if either log
// cannot be read.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = warnings.MustNewExtractor(warnings.DefaultCodePrefixes, warnings.DefaultIncludeMarker)
	}
	parser := opts.TestParser
	if parser == nil {
		parser = &testparser.CTestParser{}
	}

	result := &Result{}

	// The build and test passes share no state and run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := readLog(gctx, opts.BuildLogPath, logger)
		if err != nil {
			return err
		}
		result.Histogram = extractor.Extract(text)
		logger.Debug("extracted warnings",
			zap.Int("distinct", result.Histogram.Len()),
			zap.Int("total", result.Histogram.Total()))
		return nil
	})
	g.Go(func() error {
		text, err := readLog(gctx, opts.TestLogPath, logger)
		if err != nil {
			return err
		}
		result.Excerpt = testparser.ExtractResults(text)
		result.Counts = parser.Parse(text)
		logger.Debug("extracted test results",
			zap.String("parser", parser.Name()),
			zap.Int("lines", len(result.Excerpt.Lines)),
			zap.Bool("summary", result.Excerpt.Summary != ""))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "summarize cancelled")
	}

	result.Report = report.Assemble(opts.Environment, result.Histogram, result.Excerpt)

	write := logfile.Write
	if opts.Append {
		write = logfile.Append
	}
	if err := write(opts.OutputPath, result.Report); err != nil {
		return nil, errors.Output(opts.OutputPath, err)
	}
	logger.Info("report written",
		zap.String("path", opts.OutputPath),
		zap.Bool("append", opts.Append),
		zap.Int("bytes", len(result.Report)))

	return result, nil
}

func readLog(ctx context.Context, path string, logger *zap.Logger) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "summarize cancelled")
	}
	text, err := logfile.Read(path)
	if err != nil {
		return "", errors.Input(path, err)
	}
	logger.Debug("read log", zap.String("path", path), zap.Int("bytes", len(text)))
	return text, nil
}
