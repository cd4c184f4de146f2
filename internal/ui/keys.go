package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the bookmark list.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Add     key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Yank    key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set: vim-style j/k alongside arrows.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("C-d", "page down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add cwd"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "jump"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "save & quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Confirm, k.Add, k.Delete, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Confirm, k.Add, k.Delete, k.Yank},
		{k.Help, k.Quit},
	}
}

func (k *KeyMap) byName() map[string]*key.Binding {
	return map[string]*key.Binding{
		"up":        &k.Up,
		"down":      &k.Down,
		"top":       &k.Top,
		"bottom":    &k.Bottom,
		"page_up":   &k.PageUp,
		"page_down": &k.PageDown,
		"add":       &k.Add,
		"delete":    &k.Delete,
		"confirm":   &k.Confirm,
		"yank":      &k.Yank,
		"help":      &k.Help,
		"quit":      &k.Quit,
	}
}

// ActionNames lists the names accepted by Override, sorted.
func ActionNames() []string {
	k := DefaultKeyMap()
	names := make([]string, 0, 12)
	for name := range k.byName() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Override replaces the keys bound to the named action. The first key becomes
// the label shown in help.
func (k *KeyMap) Override(action string, keys []string) error {
	binding, ok := k.byName()[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return fmt.Errorf("unknown key action %q (want one of %s)", action, strings.Join(ActionNames(), ", "))
	}
	cleaned := make([]string, 0, len(keys))
	for _, s := range keys {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("no keys given for action %q", action)
	}
	desc := binding.Help().Desc
	binding.SetKeys(cleaned...)
	binding.SetHelp(cleaned[0], desc)
	return nil
}

// ApplyOverrides applies every action→keys pair, stopping at the first error.
// The resulting map must not bind one key to two actions.
func (k *KeyMap) ApplyOverrides(overrides map[string][]string) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := k.Override(name, overrides[name]); err != nil {
			return err
		}
	}
	return k.checkConflicts()
}

// checkConflicts reports the first key claimed by more than one action.
// handleKeyMsg would otherwise resolve it silently by match order.
func (k *KeyMap) checkConflicts() error {
	bindings := k.byName()
	owner := make(map[string]string)
	for _, name := range ActionNames() {
		for _, s := range bindings[name].Keys() {
			if prev, taken := owner[s]; taken && prev != name {
				return fmt.Errorf("key %q is bound to both %q and %q", s, prev, name)
			}
			owner[s] = name
		}
	}
	return nil
}
