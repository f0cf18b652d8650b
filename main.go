package main

import (
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmoore914/kotwords-minimal/layout"
	"github.com/jmoore914/kotwords-minimal/puzzle"
	canvasrenderer "github.com/jmoore914/kotwords-minimal/renderer/canvas"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		input          string
		output         string
		debugPath      string
		blockLightness float64
		verbose        bool
	)
	root := &cobra.Command{
		Use:          "crosspdf",
		Short:        "Render crossword puzzles to single-page PDFs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(logger, input, output, debugPath, blockLightness)
		},
	}
	root.Flags().StringVar(&input, "in", "", "puzzle JSON path")
	root.Flags().StringVar(&output, "out", "", "PDF output path")
	root.Flags().StringVar(&debugPath, "debug", "", "write the layout operation list as JSON")
	root.Flags().Float64Var(&blockLightness, "block-lightness", 0, "lighten block cells, 0 solid black to 1 white")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.MarkFlagRequired("in")
	root.MarkFlagRequired("out")
	return root
}

func run(logger *charmlog.Logger, input, output, debugPath string, blockLightness float64) error {
	source := puzzle.NewMemo(puzzle.File{Path: input})
	p, err := source.Puzzle()
	if err != nil {
		return fmt.Errorf("load puzzle %s: %w", input, err)
	}
	logger.Debug("puzzle loaded",
		"rows", p.Rows(), "cols", p.Cols(),
		"across", len(p.AcrossClues.Clues), "down", len(p.DownClues.Clues))

	opts := layout.Options{BlockLightness: blockLightness}
	if debugPath != "" {
		rec := layout.NewRecorder()
		if _, err := layout.Render(p, rec, opts); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		if err := rec.WriteDebugJSON(debugPath); err != nil {
			return fmt.Errorf("write debug json: %w", err)
		}
		logger.Debug("layout operations written", "path", debugPath, "ops", len(rec.Ops))
	}

	pdfBytes, err := canvasrenderer.NewRenderer(opts).Render(p)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write pdf file: %w", err)
	}
	logger.Info("pdf written", "path", output, "bytes", len(pdfBytes))
	return nil
}
