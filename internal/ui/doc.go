// Package ui contains the Bubble Tea program behind the bookmark list.
//
// Model.Update routes every tea.Msg through a typed handler registry so each
// message kind is handled by one focused function: key presses in
// navigation.go, clipboard results in commands.go, directory listings in
// preview.go and bookmark file notifications in backend.go.
//
// The ordered list and its cursor live in internal/ui/state. The model never
// touches the bookmark file itself; it records the terminal outcome in
// Command and the host saves Paths once the program has exited. Changes made
// to the file by other processes only raise a warning, since the in-session
// list is written back on exit regardless.
package ui
