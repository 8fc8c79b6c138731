package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavecollapse/grid"
	"github.com/katalvlaran/wavecollapse/pattern"
	"github.com/katalvlaran/wavecollapse/render"
	"github.com/katalvlaran/wavecollapse/rules"
	"github.com/katalvlaran/wavecollapse/viewer"
	"github.com/katalvlaran/wavecollapse/wave"
)

// errContradiction marks a run that ended with an over-constrained cell;
// main maps it to exit code 1 instead of the usage exit code.
var errContradiction = errors.New("generation ended in contradiction")

var (
	flagInput       string
	flagPatternSize int
	flagWidth       int
	flagHeight      int
	flagReflect     bool
	flagRotate      bool
	flagSeed        int64
	flagOut         string
	flagGIF         string
	flagLive        bool
	flagScale       int

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate an output texture from an example image",
		Long: `generate extracts overlapping patterns from the input image,
derives adjacency rules from pattern overlaps, and collapses an output
grid of the requested size. The result is written as a PNG; optionally
the whole run is recorded as an animated GIF or shown in a live window.`,
		RunE: runGenerate,
	}
)

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&flagInput, "input", "i", "", "example image (PNG or JPEG)")
	f.IntVarP(&flagPatternSize, "pattern-size", "n", 2, "pattern window side length")
	f.IntVarP(&flagWidth, "width", "W", 48, "output width in cells")
	f.IntVarP(&flagHeight, "height", "H", 48, "output height in cells")
	f.BoolVar(&flagReflect, "reflect", false, "augment patterns with flipped variants")
	f.BoolVar(&flagRotate, "rotate", false, "augment patterns with rotated variants")
	f.Int64Var(&flagSeed, "seed", 0, "random seed (0 means the fixed default)")
	f.StringVarP(&flagOut, "out", "o", "out.png", "output PNG path")
	f.StringVar(&flagGIF, "gif", "", "also record the run as an animated GIF at this path")
	f.BoolVar(&flagLive, "live", false, "show the solve in a live window")
	f.IntVar(&flagScale, "scale", 8, "live window pixels per cell")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(flagInput)
	if err != nil {
		return fmt.Errorf("loading %s: %w", flagInput, err)
	}
	slog.Debug("input loaded", "path", flagInput, "height", g.Height(), "width", g.Width())

	var extractOpts []pattern.Option
	if flagReflect {
		extractOpts = append(extractOpts, pattern.WithReflections())
	}
	if flagRotate {
		extractOpts = append(extractOpts, pattern.WithRotations())
	}
	set, err := pattern.Extract(g, flagPatternSize, extractOpts...)
	if err != nil {
		return err
	}
	slog.Info("patterns extracted", "count", set.Len(), "size", flagPatternSize)

	table, err := rules.Build(set)
	if err != nil {
		return err
	}
	slog.Debug("rules built", "directions", table.NumDirections())

	hooks := []wave.SnapshotFunc{progressHook(flagHeight * flagWidth)}
	var rec render.Recorder
	if flagGIF != "" {
		hooks = append(hooks, rec.Hook(set))
	}

	var res *wave.Result
	if flagLive {
		res, err = solveLive(set, table, hooks)
	} else {
		res, err = wave.Solve(set, table, flagHeight, flagWidth,
			wave.WithSeed(flagSeed), wave.WithSnapshot(chain(hooks)))
	}
	endProgress()
	if err != nil {
		return err
	}
	slog.Info("solve finished", "outcome", res.Outcome.String(), "iterations", res.Iterations)

	img, err := render.Image(res.Wave, set)
	if err != nil {
		return err
	}
	if err := render.SavePNG(img, flagOut); err != nil {
		return fmt.Errorf("writing %s: %w", flagOut, err)
	}
	printSuccess("wrote " + flagOut)

	if flagGIF != "" {
		if err := rec.WriteGIF(flagGIF, render.DefaultVideoOptions()); err != nil {
			return fmt.Errorf("writing %s: %w", flagGIF, err)
		}
		printSuccess("wrote " + flagGIF)
	}

	if res.Outcome == wave.StatusContradiction {
		printWarning("some cells have no possible pattern; they render black")
		return errContradiction
	}

	return nil
}

// solveLive runs the solve on its own goroutine while the window loop
// owns the main goroutine, as the display backend requires.
func solveLive(set *pattern.Set, table *rules.Table, hooks []wave.SnapshotFunc) (*wave.Result, error) {
	frames := make(chan *image.RGBA, viewer.FrameBuffer)
	hooks = append(hooks, viewer.Hook(set, frames))

	type outcome struct {
		res *wave.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := wave.Solve(set, table, flagHeight, flagWidth,
			wave.WithSeed(flagSeed), wave.WithSnapshot(chain(hooks)))
		done <- outcome{res: res, err: err}
	}()

	if err := viewer.Run("wfc", flagHeight, flagWidth, flagScale, frames); err != nil {
		slog.Warn("viewer window closed with error", "err", err)
	}
	out := <-done

	return out.res, out.err
}

// chain fans one snapshot callback out to several.
func chain(hooks []wave.SnapshotFunc) wave.SnapshotFunc {
	return func(w *wave.Wave, iteration int) {
		for _, h := range hooks {
			h(w, iteration)
		}
	}
}

// progressHook refreshes the status line at the usual render cadence and
// always on the first iteration.
func progressHook(total int) wave.SnapshotFunc {
	return func(w *wave.Wave, iteration int) {
		if iteration%render.DefaultRenderEvery != 0 && iteration != 1 {
			return
		}
		printProgress(w.CountCollapsed(), total)
	}
}
