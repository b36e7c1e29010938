// Package statsui provides the Bubble Tea season dashboard.
package statsui

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
	"github.com/verte-zerg/wicket/internal/stats"
)

const (
	tabOverview = iota
	tabBatters
	tabBowlers
	tabVenues
	tabDeliveries
	tabLookup
)

const (
	lookupBatting = iota
	lookupBowling
)

const allValues = "*"

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E6A23C"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Settings holds dashboard options that do not affect filtering.
type Settings struct {
	Title      string
	Top        int
	ExportPath string
}

// Model implements the Bubble Tea season dashboard.
type Model struct {
	store    *season.Store
	settings Settings

	spec   model.FilterSpec
	report stats.Report
	status string
	errMsg string

	tabs           []string
	activeTab      int
	viewports      []viewport.Model
	deliveryTable  table.Model
	deliveryLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	lookupMode   bool
	lookupKind   int
	lookupInput  textinput.Model
	lookupResult string
}

type tableLayout struct {
	width  int
	height int
}

// NewModel constructs a dashboard over store, starting with every team and
// innings selected.
func NewModel(store *season.Store, settings Settings) *Model {
	m := &Model{
		store:    store,
		settings: settings,
		spec:     season.AllOf(store),
		tabs:     []string{"Overview", "Batters", "Bowlers", "Venues", "Deliveries", "Lookup"},
	}
	m.initInputs()
	m.initLookupInput()
	m.deliveryTable = buildDeliveryTable(0, 1)
	m.initViewports()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.lookupMode {
			return m.updateLookup(msg)
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabDeliveries {
			m.deliveryTable.Focus()
		} else {
			m.deliveryTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startFilter()
		case "b":
			return m.startLookup(lookupBatting)
		case "w":
			return m.startLookup(lookupBowling)
		case "r":
			m.spec = season.AllOf(m.store)
			m.status = "Filters reset."
			m.refreshReport()
			return m, nil
		case "x":
			m.exportView()
			return m, nil
		case "g", "home":
			if m.activeTab == tabDeliveries {
				m.deliveryTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabDeliveries {
				m.deliveryTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabDeliveries {
				var cmd tea.Cmd
				m.deliveryTable, cmd = m.deliveryTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.lookupMode {
		return fitLines(m.renderLookupModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.viewports[tabLookup].SetContent("Press b to look up a batter or w to look up a bowler.")
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newInput("Batting teams: "),
		newInput("Bowling teams: "),
		newInput("Innings: "),
	}
	m.setInputsFromSpec()
}

func (m *Model) initLookupInput() {
	m.lookupInput = newInput("Player: ")
	m.lookupInput.Placeholder = "e.g. Kohli"
}

func newInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && (m.errMsg != "" || m.status != "") {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) setInputsFromSpec() {
	if len(m.filterInputs) == 0 {
		return
	}
	m.filterInputs[0].SetValue(formatSelection(m.spec.BattingTeams, m.store.BattingTeams()))
	m.filterInputs[1].SetValue(formatSelection(m.spec.BowlingTeams, m.store.BowlingTeams()))
	m.filterInputs[2].SetValue(formatInningsSelection(m.spec.Innings, m.store.Innings()))
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setDeliveryTableSize(m.width, vpHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
	promptWidth := lipgloss.Width(m.lookupInput.Prompt)
	m.lookupInput.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabDeliveries {
		m.deliveryTable.Focus()
	} else {
		m.deliveryTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	filters := padLines(m.renderFilterSummary(), m.width)
	return tabs + "\n" + filters
}

func (m *Model) renderFilterSummary() string {
	summary := fmt.Sprintf("%s  batting=%s  bowling=%s  innings=%s  rows=%d/%d",
		m.settings.Title,
		summarizeSelection(len(m.spec.BattingTeams), len(m.store.BattingTeams())),
		summarizeSelection(len(m.spec.BowlingTeams), len(m.store.BowlingTeams())),
		summarizeSelection(len(m.spec.Innings), len(m.store.Innings())),
		m.report.View.Len(), m.store.Len())
	summary = truncateLine(strings.TrimSpace(summary), m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down  Filter: /  Reset: r  Batter: b  Bowler: w  Export: x  Quit: q")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  * = all, blank = none")
	}
	switch {
	case m.errMsg != "":
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	case m.status != "":
		return m.renderHelp() + "\n" + headerStyle.Render(m.status)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filters (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabDeliveries {
		if m.report.View.Len() == 0 {
			return fitLines("No deliveries match the current filters.", m.width, height)
		}
		view := tableMutedStyle.Render(m.deliveryTable.View())
		return fitLines(view, m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refreshReport() {
	m.report = stats.BuildReport(m.store, m.spec, m.settings.Top)
	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.deliveryTable.SetRows(buildDeliveryRows(m.report.View))
	m.deliveryTable.GotoTop()
	m.deliveryLayout = tableLayout{}
	m.setDeliveryTableSize(width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, width))
	m.viewports[tabBatters].SetContent(renderBars(fmt.Sprintf("Top %d Run Scorers", len(m.report.TopScorers)), m.report.TopScorers, width))
	m.viewports[tabBowlers].SetContent(renderBars(fmt.Sprintf("Top %d Wicket Takers", len(m.report.TopWicketTakers)), m.report.TopWicketTakers, width))
	m.viewports[tabVenues].SetContent(renderBars("Matches Played per Venue", m.report.Venues, width))
	if m.lookupResult != "" {
		m.viewports[tabLookup].SetContent(m.lookupResult)
	}
}

func renderOverview(r stats.Report, width int) string {
	if r.View.Len() == 0 {
		return "No deliveries match the current filters."
	}
	cards := []string{
		metricCard("Deliveries", strconv.Itoa(r.View.Len())),
		metricCard("Matches", strconv.Itoa(r.Matches)),
	}
	for _, t := range r.RunTypes {
		if t.Label == stats.LabelBatsmanRuns || t.Label == stats.LabelExtras {
			cards = append(cards, metricCard(t.Label, strconv.Itoa(t.Total)))
		}
	}
	wickets := 0
	for _, t := range stats.TopWicketTakers(r.View, r.View.Len()) {
		wickets += t.Total
	}
	cards = append(cards, metricCard("Wickets", strconv.Itoa(wickets)))

	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return strings.TrimRight(summary+"\n\n"+renderBars("Run Type Distribution", r.RunTypes, width), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderBars(title string, tallies []model.Tally, width int) string {
	var buf bytes.Buffer
	if err := stats.PlotBarsWithColor(&buf, title, tallies, width, true); err != nil {
		return fmt.Sprintf("Failed to render chart: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func deliveryColumns() []table.Column {
	return []table.Column{
		{Title: "Match", Width: 8},
		{Title: "Inn", Width: 3},
		{Title: "Batting", Width: 14},
		{Title: "Bowling", Width: 14},
		{Title: "Striker", Width: 18},
		{Title: "Bowler", Width: 18},
		{Title: "Bat", Width: 3},
		{Title: "Ext", Width: 3},
		{Title: "Dismissed", Width: 18},
		{Title: "Venue", Width: 24},
	}
}

func buildDeliveryRows(view season.View) []table.Row {
	rows := make([]table.Row, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		d := view.At(i)
		rows = append(rows, table.Row{
			d.MatchID,
			strconv.Itoa(d.Innings),
			d.BattingTeam,
			d.BowlingTeam,
			d.Striker,
			d.Bowler,
			strconv.Itoa(d.RunsOfBat),
			strconv.Itoa(d.Extras),
			d.PlayerDismissed,
			d.Venue,
		})
	}
	return rows
}

func buildDeliveryTable(width, height int) table.Model {
	t := table.New(
		table.WithColumns(deliveryColumns()),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(deliveryTableStyles())
	return t
}

func (m *Model) setDeliveryTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.deliveryLayout.width == width && m.deliveryLayout.height == viewportHeight {
		return
	}
	m.deliveryLayout.width = width
	m.deliveryLayout.height = viewportHeight
	m.deliveryTable.SetWidth(width)
	m.deliveryTable.SetHeight(viewportHeight)
	viewportHeight = m.adjustDeliveryTableHeight(height)
	if m.deliveryLayout.height != viewportHeight {
		m.deliveryLayout.height = viewportHeight
		m.deliveryTable.SetHeight(viewportHeight)
	}
}

func deliveryTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) adjustDeliveryTableHeight(bodyHeight int) int {
	target := maxInt(1, bodyHeight)
	height := m.deliveryTable.Height()
	viewHeight := lipgloss.Height(m.deliveryTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	m.deliveryTable.SetHeight(height)
	viewHeight = lipgloss.Height(m.deliveryTable.View())
	if viewHeight == target {
		return height
	}
	height += target - viewHeight
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromSpec()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.status = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	innings, err := parseInnings(m.filterInputs[2].Value(), m.store.Innings())
	if err != nil {
		return err
	}
	m.spec = model.NewFilterSpec(
		parseSelection(m.filterInputs[0].Value(), m.store.BattingTeams()),
		parseSelection(m.filterInputs[1].Value(), m.store.BowlingTeams()),
		innings,
	)
	return nil
}

func (m *Model) startLookup(kind int) (tea.Model, tea.Cmd) {
	m.lookupMode = true
	m.lookupKind = kind
	m.lookupInput.SetValue("")
	return m, m.lookupInput.Focus()
}

func (m *Model) updateLookup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.lookupMode = false
		m.lookupInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.lookupMode = false
		m.lookupInput.Blur()
		m.runLookup(m.lookupInput.Value())
		m.activeTab = tabLookup
		m.deliveryTable.Blur()
		return m, tea.ClearScreen
	}
	var cmd tea.Cmd
	m.lookupInput, cmd = m.lookupInput.Update(msg)
	return m, cmd
}

func (m *Model) runLookup(query string) {
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.lookupResult = renderLookup(m.store, m.lookupKind, query, width)
	m.viewports[tabLookup].SetContent(m.lookupResult)
	m.viewports[tabLookup].GotoTop()
}

func renderLookup(store *season.Store, kind int, query string, width int) string {
	var (
		title string
		lines [][2]string
		rows  season.View
		err   error
	)
	if kind == lookupBowling {
		var s model.BowlingStats
		s, rows, err = stats.Bowling(store, query)
		title = "Stats for Bowler: " + query
		lines = stats.BowlingLines(s)
	} else {
		var s model.BattingStats
		s, rows, err = stats.Batting(store, query)
		title = "Stats for Striker: " + query
		lines = stats.BattingLines(s)
	}
	switch {
	case errors.Is(err, stats.ErrNotFound):
		if kind == lookupBowling {
			return warnStyle.Render("Bowler not found.")
		}
		return warnStyle.Render("Player not found.")
	case errors.Is(err, stats.ErrEmptyQuery):
		return warnStyle.Render("Enter a player name.")
	case err != nil:
		return errorStyle.Render(err.Error())
	}

	cards := make([]string, 0, len(lines))
	for _, l := range lines {
		cards = append(cards, metricCard(l[0], l[1]))
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	var buf bytes.Buffer
	if err := stats.RenderDeliveries(&buf, rows); err != nil {
		return errorStyle.Render(err.Error())
	}
	return strings.TrimRight(cardValueStyle.Render(title)+"\n"+summary+"\n\n"+buf.String(), "\n")
}

func (m *Model) renderLookupModal() string {
	label := "Batter Lookup"
	if m.lookupKind == lookupBowling {
		label = "Bowler Lookup"
	}
	body := []string{
		cardValueStyle.Render(label),
		m.lookupInput.View(),
		headerStyle.Render("Matches any part of the name, ignoring case."),
		headerStyle.Render("Enter to search / Esc to cancel"),
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) exportView() {
	path := m.settings.ExportPath
	if path == "" {
		m.errMsg = "no export path configured"
		return
	}
	if err := season.WritePortableFile(path, m.report.View); err != nil {
		m.errMsg = err.Error()
		m.status = ""
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("Exported %d deliveries to %s", m.report.View.Len(), path)
}

// parseSelection reads a comma-separated list. "*" selects every known
// value; a blank input selects none.
func parseSelection(input string, known []string) []string {
	input = strings.TrimSpace(input)
	if input == allValues {
		return append([]string(nil), known...)
	}
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func parseInnings(input string, known []int) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == allValues {
		return append([]int(nil), known...), nil
	}
	var out []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid innings %q (use positive integers)", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func formatSelection(selected map[string]struct{}, known []string) string {
	if len(selected) == len(known) && len(known) > 0 {
		all := true
		for _, k := range known {
			if _, ok := selected[k]; !ok {
				all = false
				break
			}
		}
		if all {
			return allValues
		}
	}
	parts := make([]string, 0, len(selected))
	for _, k := range known {
		if _, ok := selected[k]; ok {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, ", ")
}

func formatInningsSelection(selected map[int]struct{}, known []int) string {
	names := make([]string, len(known))
	set := make(map[string]struct{}, len(selected))
	for i, n := range known {
		names[i] = strconv.Itoa(n)
		if _, ok := selected[n]; ok {
			set[names[i]] = struct{}{}
		}
	}
	return formatSelection(set, names)
}

func summarizeSelection(selected, known int) string {
	if selected == known && known > 0 {
		return "all"
	}
	return fmt.Sprintf("%d/%d", selected, known)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func modalWidth(width int) int {
	return maxInt(40, minInt(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
