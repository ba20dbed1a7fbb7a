package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/pet-dashboard/internal/logging/events"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	tabsHeight     = 3
	minBodyHeight  = 4
	listPercent    = 20 // share of the width given to the name list
	minListWidth   = 12
	createdLayout  = "2006-01-02 15:04:05"
	emptyListLabel = "(no pets)"
	emptyDetail    = "Press 'a' to add a random pet."
)

const tabDivider = " | "

// painter turns a frame into terminal text for a given viewport.
type painter struct {
	width     int
	height    int
	showHints bool
	help      help.Model
}

func (p painter) paint(f frame) string {
	width, height := p.width, p.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	footerHeight := 3
	if p.showHints {
		footerHeight++
	}
	bodyHeight := height - tabsHeight - footerHeight
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}

	sections := []string{p.renderTabs(f.tabs, width)}
	switch {
	case f.home != nil:
		sections = append(sections, p.renderHome(f.home, width, bodyHeight))
	case f.pets != nil:
		sections = append(sections, p.renderPets(f.pets, width, bodyHeight))
	}
	sections = append(sections, p.renderFooter(f.footer, width, footerHeight))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p painter) renderTabs(bar tabBar, width int) string {
	parts := make([]string, len(bar.titles))
	for i, title := range bar.titles {
		rest := styles.Tab.Render(title.rest)
		if i == bar.active {
			rest = styles.ActiveTab.Render(title.rest)
		}
		parts[i] = styles.TabHotkey.Render(title.hotkey) + rest
	}
	line := strings.Join(parts, styles.TabDivider.Render(tabDivider))
	return renderBlock("Menu", []string{line}, width, tabsHeight, false)
}

func (p painter) renderHome(panel *homePanel, width, height int) string {
	lines := make([]string, len(panel.lines))
	for i, line := range panel.lines {
		if line.brand {
			lines[i] = styles.Brand.Render(line.text)
		} else {
			lines[i] = styles.Welcome.Render(line.text)
		}
	}
	return renderBlock("Home", lines, width, height, true)
}

func (p painter) renderPets(panel *petsPanel, width, height int) string {
	listWidth := width * listPercent / 100
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > width-minListWidth {
		listWidth = width / 2
	}
	detailWidth := width - listWidth

	left := renderBlock("Pets", listLines(panel, listWidth-2, height-2), listWidth, height, false)
	var detail []string
	if panel.detail == nil {
		detail = []string{styles.Placeholder.Render(emptyDetail)}
	} else {
		detail = detailLines(panel, detailWidth-2)
	}
	right := renderBlock("Detail", detail, detailWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// listLines renders the visible window of names with the cursor row
// highlighted across the full inner width.
func listLines(panel *petsPanel, innerWidth, innerHeight int) []string {
	if len(panel.names) == 0 {
		return []string{styles.Placeholder.Render(emptyListLabel)}
	}
	if innerWidth < 1 {
		innerWidth = 1
	}
	offset := 0
	if innerHeight > 0 && panel.selected >= innerHeight {
		offset = panel.selected - innerHeight + 1
	}
	end := len(panel.names)
	if innerHeight > 0 && offset+innerHeight < end {
		end = offset + innerHeight
	}
	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		name := truncate.StringWithTail(panel.names[i], uint(innerWidth), "…")
		if pad := innerWidth - ansi.StringWidth(name); pad > 0 {
			name += strings.Repeat(" ", pad)
		}
		if i == panel.selected {
			lines = append(lines, styles.SelectedItem.Render(name))
		} else {
			lines = append(lines, styles.Item.Render(name))
		}
	}
	return lines
}

func detailLines(panel *petsPanel, innerWidth int) []string {
	pet := panel.detail
	t := table.New(
		table.WithColumns(detailColumns(innerWidth)),
		table.WithRows([]table.Row{{
			strconv.FormatUint(pet.ID, 10),
			pet.Name,
			pet.Category,
			strconv.FormatUint(pet.Age, 10),
			pet.CreatedAt.UTC().Format(createdLayout),
		}}),
		table.WithHeight(3),
		table.WithFocused(false),
		table.WithStyles(detailStyles()),
	)
	return strings.Split(t.View(), "\n")
}

func detailColumns(innerWidth int) []table.Column {
	const (
		idWidth       = 6
		categoryWidth = 8
		ageWidth      = 3
		createdWidth  = len(createdLayout)
		cellPadding   = 2
		columns       = 5
	)
	nameWidth := innerWidth - columns*cellPadding - idWidth - categoryWidth - ageWidth - createdWidth
	if nameWidth < 10 {
		nameWidth = 10
	}
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Category", Width: categoryWidth},
		{Title: "Age", Width: ageWidth},
		{Title: "Created At", Width: createdWidth},
	}
}

func detailStyles() table.Styles {
	cell := styles.TableCell.Copy().Padding(0, 1)
	return table.Styles{
		Header:   styles.TableHeader.Copy().Padding(0, 1),
		Cell:     cell,
		Selected: lipgloss.NewStyle(),
	}
}

func (p painter) renderFooter(footer footerBar, width, height int) string {
	lines := []string{styles.Footer.Render(footer.text)}
	if p.showHints {
		h := p.help
		h.Width = width - 2
		lines = append(lines, h.ShortHelpView(footer.hints))
	}
	return renderBlock("Copyright", lines, width, height, true)
}

// renderBlock draws a plain box with the title set into the top border and
// exactly height rows of width columns. Lines may carry ANSI styling.
func renderBlock(title string, lines []string, width, height int, center bool) string {
	const (
		tlc = "┌"
		trc = "┐"
		blc = "└"
		brc = "┘"
		hz  = "─"
		vt  = "│"
	)

	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := title
	if ansi.StringWidth(titleSeg) > innerW {
		titleSeg = ansi.Truncate(titleSeg, innerW, "")
	}
	dashes := innerW - ansi.StringWidth(titleSeg)
	top := styles.Block.Render(tlc) +
		styles.BlockTitle.Render(titleSeg) +
		styles.Block.Render(strings.Repeat(hz, dashes)+trc)
	bottom := styles.Block.Render(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		rows = append(rows, styles.Block.Render(vt)+fitLine(content, innerW, center)+styles.Block.Render(vt))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

// fitLine truncates or pads s to exactly width visible columns.
func fitLine(s string, width int, center bool) string {
	w := ansi.StringWidth(s)
	if w > width {
		s = ansi.Truncate(s, width, "…")
		w = ansi.StringWidth(s)
	}
	pad := width - w
	if pad <= 0 {
		return s
	}
	if !center {
		return s + strings.Repeat(" ", pad)
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// View renders the current frame plus any status line. A frame that fails to
// build is shown as an error banner in place of the body.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	status := m.statusLine()
	p := painter{width: m.width, height: m.height, showHints: m.showFooter, help: m.help}
	if status != "" && p.height > 0 {
		p.height--
	}

	f, err := buildFrame(m.dash, m.pets.Entries(), m.keys)
	if err != nil {
		if msg := err.Error(); msg != m.renderErr {
			events.UI.RenderError(err)
			m.renderErr = msg
		}
		return m.renderBanner(err)
	}
	m.renderErr = ""

	out := p.paint(f)
	if status != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, status)
	}
	return out
}

func (m *Model) statusLine() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	switch {
	case m.errMsg != "":
		return styles.Error.Render(fitLine("Error: "+m.errMsg, width, false))
	case m.loadErr != "":
		return styles.Error.Render(fitLine("Error: "+m.loadErr, width, false))
	case m.infoMsg != "":
		return styles.Info.Render(fitLine(m.infoMsg, width, false))
	}
	return ""
}

func (m *Model) renderBanner(err error) string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	lines := []string{"", styles.Error.Render("Unable to render: " + err.Error())}
	return renderBlock("Error", lines, width, height, true)
}
