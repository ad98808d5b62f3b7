// Package layout holds the integer cell geometry shared by the scroll view
// and the renderer.
//
// Rects live in one of two spaces: content space, where a scroll view stacks
// its items starting at y=0, and screen space, where a buffer is painted.
// Types are re-exported through the root sticky package.
package layout
