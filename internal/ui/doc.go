// Package ui groups the terminal UI components of mr.
//
// Only the interactive picker (mr -i) draws anything; every other command
// prints a single line for the shell to evaluate.
//
//   - picker: fuzzy package picker built on Bubbletea and a bubbles text input
//   - styles: lipgloss colours and themes shared by the picker
//
// # Design Notes
//
// The picker renders on stderr. Stdout must only ever carry the command line,
// so `eval "$(mr -i)"` works while the picker is on screen.
package ui
