// Package ui provides the interactive terminal chart view.
//
// The view is a Bubble Tea model: a tick message at the configured
// frame rate flushes the frame queue that drives the motion engines,
// then the chart re-renders from the coordinator's current scale and
// offset.
//
// # Key Bindings
//
//	wheel      - Zoom at the cursor column
//	drag       - Pan (momentum on release)
//	←/→  h/l   - Pan by one step
//	+/-        - Zoom at the center
//	R          - Reset view
//	?          - Toggle help overlay
//	Q          - Quit
package ui
