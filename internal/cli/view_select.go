package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/enbridge/internal/cli/formatter"
	"github.com/alexanderramin/enbridge/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// selectView shows the metal cards next to the reference element.
type selectView struct {
	state  *SharedState
	cursor int
}

func newSelectView(state *SharedState) *selectView {
	return &selectView{state: state}
}

func (v *selectView) ID() ViewID     { return ViewSelect }
func (v *selectView) Title() string  { return "Select" }
func (v *selectView) Init() tea.Cmd { return nil }

func (v *selectView) ShortHelp() []key.Binding {
	return []key.Binding{
		keys.Left,
		keys.Select,
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-"+strconv.Itoa(v.count()), "pick")),
	}
}

func (v *selectView) count() int {
	return v.state.Session.Catalog().Len()
}

func (v *selectView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Left):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, keys.Right):
		if v.cursor < v.count()-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, keys.Select):
		if m, ok := v.state.Session.Catalog().At(v.cursor); ok {
			return v, selectMetal(m.Symbol)
		}
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil {
			if m, ok := v.state.Session.Catalog().At(n - 1); ok {
				v.cursor = n - 1
				return v, selectMetal(m.Symbol)
			}
		}
	}
	return v, nil
}

func (v *selectView) View() string {
	cat := v.state.Session.Catalog()
	metals := cat.Metals()

	cards := make([]string, 0, len(metals))
	for i, m := range metals {
		cards = append(cards, metalCard(m, i == v.cursor))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Indent(formatter.Header("Metal Cations"), 2) + "\n")
	b.WriteString(formatter.Indent(wrapCards(cards, v.state.Width), 2) + "\n")
	b.WriteString(formatter.Indent(formatter.Header("Bonded to "+cat.Reference().Name), 2) + "\n")
	b.WriteString(formatter.Indent(referenceCard(cat.Reference()), 2) + "\n")
	b.WriteString("  " + formatter.Dim("Electronegativity measures an atom's ability to attract electrons.") + "\n")
	return b.String()
}

func metalCard(m domain.Metal, focused bool) string {
	border := lipgloss.NormalBorder()
	color := formatter.ColorDim
	if m.Color != "" {
		color = lipgloss.Color(m.Color)
	}
	if focused {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(color).
		Width(10).
		Align(lipgloss.Center)

	body := formatter.MetalStyle(m).Render(m.Symbol) + " " + formatter.Dim(m.OxidationState) + "\n" +
		m.Name + "\n" +
		formatter.Dim("EN ") + formatter.FormatEN(m.Electronegativity)
	return style.Render(body)
}

func referenceCard(r domain.Reference) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(formatter.ColorRed).
		Width(10).
		Align(lipgloss.Center)

	body := formatter.StyleRed.Render(r.Symbol) + " " + formatter.Dim(r.Charge) + "\n" +
		r.Name + "\n" +
		formatter.Dim("EN ") + formatter.FormatEN(r.Electronegativity)
	return style.Render(body)
}

// wrapCards joins cards horizontally, starting a new row when width runs out.
func wrapCards(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	perRow := max((width-2)/lipgloss.Width(cards[0]), 1)

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
