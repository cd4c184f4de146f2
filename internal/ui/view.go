package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	previewPanelMinWidth = 30  // below this no split
	previewPanelFraction = 0.4 // share of the width given to the preview panel
	bottomBarRows        = 1   // error/status line

	emptyListMessage = "(no bookmarks; press a to add the current directory)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.hasSidePreview() {
		return m.viewSideBySide()
	}
	return m.viewVertical()
}

func (m *Model) hasSidePreview() bool {
	return m.showPreview && m.previewPanelWidth() > 0
}

// previewPanelWidth is 0 when the terminal is too narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) listColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

func (m *Model) viewVertical() string {
	lines := m.contentLines(m.width)
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, applyWidth([]styledLine{m.statusLine()}, m.width)...)
	return renderLines(lines)
}

func (m *Model) viewSideBySide() string {
	listW := m.listColumnWidth()
	prevW := m.previewPanelWidth()

	panelH := m.height - bottomBarRows
	if panelH < 3 {
		panelH = 3
	}
	lines := m.contentLines(listW)
	if len(lines) > panelH {
		lines = limitHeight(lines, panelH, listW)
	}
	for len(lines) < panelH {
		lines = append(lines, styledLine{})
	}
	left := renderLines(applyWidth(lines, listW))

	// Styled rows must be measured ANSI-aware before padding, otherwise the
	// preview panel drifts off the right edge.
	rows := strings.Split(left, "\n")
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > listW {
			rows[i] = truncate.StringWithTail(row, uint(listW-1), "…")
		} else if w < listW {
			rows[i] = row + strings.Repeat(" ", listW-w)
		}
	}
	left = strings.Join(rows, "\n")

	right := m.renderPreviewPanel(m.preview, prevW, panelH)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	bottom := renderLines(applyWidth([]styledLine{m.statusLine()}, m.width))
	return top + "\n" + bottom
}

// contentLines renders everything above the status line for a column of the
// given width.
func (m *Model) contentLines(width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine())
	m.syncViewport()
	if m.list.Len() == 0 {
		lines = append(lines, styledLine{text: emptyListMessage, style: styles.Info})
	} else {
		start, end := m.visibleRange()
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildItemLine(m.list.Paths[idx], idx, width))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.warnMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "! " + m.warnMsg, style: styles.Warning})
	}
	if footer := m.footerText(); footer != "" {
		lines = append(lines, styledLine{})
		for _, row := range strings.Split(footer, "\n") {
			lines = append(lines, styledLine{text: row, style: styles.Footer})
		}
	}
	return lines
}

func (m *Model) headerLine() styledLine {
	count := m.list.Len()
	noun := "bookmarks"
	if count == 1 {
		noun = "bookmark"
	}
	const title = "save-point"
	text := fmt.Sprintf("%s · %d %s", title, count, noun)
	if m.storePath != "" {
		text += " · " + m.displayPath(m.storePath)
	}
	return styledLine{
		text:          text,
		style:         styles.HeaderDetail,
		prefixStyle:   styles.Header,
		highlightFrom: len(title),
	}
}

func (m *Model) statusLine() styledLine {
	if m.errMsg == "" {
		return styledLine{}
	}
	return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
}

// footerText renders key help without styling; the Footer style is applied
// per row so widths stay measurable.
func (m *Model) footerText() string {
	if !m.showFooter && !m.help.ShowAll {
		return ""
	}
	h := m.help
	h.Styles.ShortKey = lipgloss.NewStyle()
	h.Styles.ShortDesc = lipgloss.NewStyle()
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	h.Styles.FullKey = lipgloss.NewStyle()
	h.Styles.FullDesc = lipgloss.NewStyle()
	h.Styles.FullSeparator = lipgloss.NewStyle()
	h.Styles.Ellipsis = lipgloss.NewStyle()
	return h.View(m.keys)
}

func (m *Model) visibleRange() (int, int) {
	total := m.list.Len()
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || total <= maxItems {
		return 0, total
	}
	start := m.list.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxItems > total {
		start = total - maxItems
	}
	return start, start + maxItems
}

// buildItemLine pads the label to width so the selected row's background
// spans the whole column.
func (m *Model) buildItemLine(path string, idx, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.list.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + m.displayPath(path)
	if width > 0 {
		if pad := width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// displayPath abbreviates the home directory to ~.
func (m *Model) displayPath(path string) string {
	if m.home == "" {
		return path
	}
	if path == m.home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, m.home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return path
}

// renderPreviewPanel builds the bordered listing box with exactly height rows
// and totalWidth columns.
func (m *Model) renderPreviewPanel(preview *previewData, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)

	title := " Preview "
	var body []string
	bodyStyle := styles.PreviewBody
	switch {
	case preview == nil:
		body = []string{"(nothing selected)"}
	case preview.err != "":
		title = " " + m.displayPath(preview.target) + " "
		body = []string{preview.err}
		bodyStyle = styles.PreviewError
	case preview.loading:
		title = " " + m.displayPath(preview.target) + " "
		body = []string{"Loading…"}
	default:
		title = " " + m.displayPath(preview.target) + " "
		body = preview.lines
	}

	if runewidth.StringWidth(title) > totalWidth-4 {
		title = runewidth.Truncate(title, max(totalWidth-5, 1), "…") + " "
	}
	dashes := max(totalWidth-4-runewidth.StringWidth(title), 0)
	rows := make([]string, 0, height)
	rows = append(rows, styles.PreviewBorder.Render(tlc+hz)+
		styles.PreviewTitle.Render(title)+
		styles.PreviewBorder.Render(strings.Repeat(hz, dashes)+hz+trc))
	for i := 0; i < innerH; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		content = truncateText(content, innerW)
		if w := runewidth.StringWidth(content); w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		style := bodyStyle
		if bodyStyle == styles.PreviewBody && strings.HasSuffix(strings.TrimRight(content, " "), "/") {
			style = styles.PreviewDir
		}
		rows = append(rows, styles.PreviewBorder.Render(vt)+style.Render(content)+styles.PreviewBorder.Render(vt))
	}
	rows = append(rows, styles.PreviewBorder.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows + 1 // header
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.warnMsg != "" {
		used += 2
	}
	if footer := m.footerText(); footer != "" {
		used += 1 + strings.Count(footer, "\n") + 1
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width display columns, marking the cut with "…".
func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
