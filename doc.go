// Package wavecollapse grows arbitrarily large textures from a tiny
// example image — extract overlapping patterns, learn which may sit next
// to which, then collapse a possibility field cell by cell.
//
// 🚀 What is wavecollapse?
//
//	A small, deterministic texture-synthesis library built from focused
//	subpackages:
//		• Pattern extraction: N×N windows with optional flips & rotations
//		• Adjacency learning: overlap-derived compatibility rules
//		• Constraint solving: entropy-guided observe/collapse/propagate
//		• Rendering: final PNGs, mean-color previews, animated GIF runs
//		• Live view: watch a solve converge in a window
//
// ✨ Why choose wavecollapse?
//
//   - Deterministic – same input, same seed, same output, every run
//   - Observable – a snapshot hook fires after every iteration
//   - Composable – each stage is a plain function over plain values
//   - Pure Go core – the solver depends on nothing outside the stdlib
//
// Everything is organized under focused subpackages:
//
//	grid/    — RGB sample grids, PNG/JPEG decoding
//	pattern/ — window extraction, symmetry augmentation, frequencies
//	rules/   — overlap compatibility table over directional offsets
//	wave/    — possibility tensor & the solver loop
//	render/  — images, upscaling, animated GIF recording
//	viewer/  — live window fed by solver snapshots
//	cmd/wfc  — command-line front end
//
// Quick example:
//
//	g, _ := grid.Load("tile.png")
//	run, err := wavecollapse.Generate(g, wavecollapse.Config{
//		PatternSize: 2,
//		OutHeight:   64,
//		OutWidth:    64,
//		Rotate:      true,
//	}, wave.WithSeed(7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	img, _ := render.Image(run.Result.Wave, run.Patterns)
//	_ = render.SavePNG(img, "out.png")
//
// See each subpackage's doc.go for options, invariants and errors.
package wavecollapse
