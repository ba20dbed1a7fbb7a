// Package ui contains the Bubble Tea program that renders the pet dashboard.
//
// Bubble Tea's own input reader is disabled. Input and ticks arrive through
// an EventSource (normally a backend.Multiplexer), one event per Update:
//   - waitForEvent blocks on the source and wraps the next event in an
//     eventMsg. The handler for eventMsg applies it through the dispatcher,
//     reloads the snapshot, and schedules the next wait.
//   - An input failure or a quit key ends the loop with tea.Quit. Err reports
//     the failure to the caller.
//
// The dispatcher never changes state on a tick. The snapshot reload that
// follows every event can still move the cursor: when the file was shortened
// outside the program, refresh clamps the cursor onto the new last row so the
// frame stays valid.
//
// Rendering is split in two. buildFrame derives a frame (tab bar, body,
// footer) from the dashboard state and the snapshot without touching the
// terminal, and rejects a cursor that does not point into a non-empty list.
// painter lays the frame out at the current size.
package ui
