// Package render turns wave tensors into images: the final collapsed
// output, mean-color progress previews, and an animated GIF of a whole
// run.
//
// What:
//
//   - Image maps a tensor to pixels: a collapsed cell takes its single
//     pattern's representative (top-left) sample; an uncollapsed cell
//     takes the mean of the representative samples of its remaining
//     candidates, which makes progress frames fade from gray noise into
//     the final texture.
//   - Upscale performs integer nearest-neighbor enlargement, preserving
//     the aspect ratio and the hard tile edges.
//   - Recorder captures one frame per solver iteration through the
//     wave.WithSnapshot hook and writes the run as an animated GIF,
//     subsampling frames so the clip never exceeds FPS×MaxSeconds.
//   - SavePNG persists a frame.
//
// Why:
//
//   - The solver deliberately knows nothing about pixels; everything
//     visual lives behind the snapshot hook and the terminal tensor, so
//     rendering choices can change without touching the core.
//
// Errors:
//
//   - ErrNilWave, ErrNilPatternSet: missing inputs.
//   - ErrShapeMismatch: the tensor's pattern axis does not match the set.
//   - ErrNoFrames: WriteGIF called on an empty recorder.
//   - ErrBadVideoOptions: non-positive FPS, or a negative length or
//     upscale target.
package render
