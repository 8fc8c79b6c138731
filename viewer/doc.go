// Package viewer shows a solve in a live window as it converges.
//
// What:
//
//   - Hook adapts a frame channel to the solver's snapshot callback,
//     rendering each snapshot and sending it without blocking; when the
//     window falls behind, intermediate frames are dropped.
//   - Viewer implements ebiten.Game: Update drains the channel to the
//     newest frame, Draw writes it to the screen, Layout reports the
//     output grid dimensions so the window scales cells to pixels.
//   - Run opens the window and blocks until it is closed.
//
// Why:
//
//   - The solver must never wait on the display. Frames travel over a
//     buffered channel with drop-on-full sends, so a slow or closed
//     window cannot stall or deadlock a solve.
//
// The solve runs on its own goroutine; Run must be called from the main
// goroutine, as the windowing backend requires.
package viewer
