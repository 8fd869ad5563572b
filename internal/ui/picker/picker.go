// Package picker implements the interactive package picker behind mr -i.
//
// The picker draws on stderr so stdout stays free for the shell command the
// caller evaluates.
package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/mr/internal/ui/styles"
)

const maxVisible = 10

// Item is one selectable package directory.
type Item struct {
	Label string // root-relative path shown and matched against
	Path  string // absolute directory returned on selection
}

// Result is the outcome of a picker session.
type Result struct {
	Path      string
	Cancelled bool
}

// itemSource implements fuzzy.Source for items.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

type model struct {
	title    string
	input    textinput.Model
	items    []Item
	filtered []fuzzy.Match
	cursor   int

	done      bool
	cancelled bool
	selected  int // index into items; -1 means no selection
}

func newModel(title, initial string, items []Item) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.SetWidth(40)
	ti.SetValue(initial)
	ti.Focus()

	m := &model{
		title:    title,
		input:    ti,
		items:    items,
		selected: -1,
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; other messages only reach the text input.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.cancelled = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	case "pgup", "home":
		m.cursor = 0
		return m, nil
	case "pgdown", "end":
		m.cursor = max(0, len(m.filtered)-1)
		return m, nil
	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.selected = m.filtered[m.cursor].Index
		m.done = true
		return m, tea.Quit
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *model) applyFilter() {
	filter := m.input.Value()
	if filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.items))
		for i := range m.items {
			m.filtered[i] = fuzzy.Match{Str: m.items[i].Label, Index: i}
		}
	} else {
		// sorted by score, best first
		m.filtered = fuzzy.FindFrom(filter, itemSource(m.items))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *model) View() tea.View {
	if m.done || m.cancelled {
		return tea.NewView("")
	}
	return tea.NewView(m.render())
}

func (m *model) render() string {
	var b strings.Builder
	b.WriteString(styles.PrimaryStyle.Bold(true).Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.filtered[i]
		selected := i == m.cursor
		cursor := "  "
		if selected {
			cursor = styles.AccentStyle.Render(styles.Cursor) + " "
		}
		b.WriteString(cursor + highlight(match.Str, match.MatchedIndexes, selected) + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching packages") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle.Render(help(len(m.filtered), len(m.items))) + "\n")
	return b.String()
}

func help(shown, total int) string {
	return strings.Join([]string{
		fmt.Sprintf("%d/%d", shown, total),
		"↑/↓ select",
		"enter confirm",
		"esc cancel",
	}, " • ")
}

// highlight renders label with the fuzzy-matched bytes emphasised.
func highlight(label string, matched []int, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	set := make(map[int]bool, len(matched))
	for _, idx := range matched {
		set[idx] = true
	}

	var b strings.Builder
	for i, r := range label {
		if set[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Run shows the picker and blocks until the user selects an item or cancels.
// An empty item list returns a cancelled result without drawing anything.
func Run(title, initial string, items []Item) (Result, error) {
	if len(items) == 0 {
		return Result{Cancelled: true}, nil
	}

	m := newModel(title, initial, items)

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	fm := finalModel.(*model)
	if fm.cancelled || !fm.done || fm.selected < 0 {
		return Result{Cancelled: true}, nil
	}
	return Result{Path: fm.items[fm.selected].Path}, nil
}

// Items builds picker items for package directories, labelled relative to root.
func Items(root string, dirs []string) []Item {
	items := make([]Item, 0, len(dirs))
	for _, dir := range dirs {
		label, err := filepath.Rel(root, dir)
		if err != nil || label == "." {
			label = dir
		}
		items = append(items, Item{Label: filepath.ToSlash(label), Path: dir})
	}
	return items
}
