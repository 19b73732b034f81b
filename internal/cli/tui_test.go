package cli

import (
	"testing"

	"github.com/alexanderramin/enbridge/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnSelection(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewSelect, d.ActiveViewID())
	assert.Equal(t, domain.StageSelecting, d.Stage())

	view := d.View()
	assert.Contains(t, view, "Step 1: Select a Metal Cation")
	assert.Contains(t, view, "Calcium")
	assert.Contains(t, view, "Copper")
	assert.Contains(t, view, "Oxygen")
}

func TestTUI_SelectWithEnterPicksCursor(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressType(tea.KeyRight)
	d.PressEnter()

	s := d.Session.State()
	require.NotNil(t, s.Selected)
	assert.Equal(t, "Mg", s.Selected.Symbol)
	assert.Equal(t, ViewStage, d.ActiveViewID())
	assert.Contains(t, d.View(), "Step 2: Electronegativity Comparison")
}

func TestTUI_CursorStaysInBounds(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressType(tea.KeyLeft)
	d.PressEnter()
	assert.Equal(t, "Ca", d.Session.State().Selected.Symbol)

	d.PressKey('r')
	for i := 0; i < 10; i++ {
		d.PressType(tea.KeyRight)
	}
	d.PressEnter()
	assert.Equal(t, "Cu", d.Session.State().Selected.Symbol)
}

func TestTUI_DigitSelectsDirectly(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('6')

	assert.Equal(t, "Cu", d.Session.State().Selected.Symbol)
	assert.Contains(t, d.View(), "3.4 − 1.9 = 1.5")
	assert.Contains(t, d.View(), "Large Difference - Moderate Effect")
}

func TestTUI_DigitOutOfRangeIgnored(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('9')

	assert.Equal(t, domain.StageSelecting, d.Stage())
	assert.Empty(t, d.Recorder.Events)
}

func TestTUI_FullSequentialWalkthrough(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	assert.Equal(t, domain.StageComparingValues, d.Stage())
	assert.Contains(t, d.View(), "Now let's see what happens to the electrons...")
	assert.Contains(t, d.View(), "skip to complete process")

	d.PressEnter()
	assert.Equal(t, domain.StageFlowAnimation, d.Stage())
	view := d.View()
	assert.Contains(t, view, "Step 3: Electron Density Flow")
	assert.Contains(t, view, "Very Strong")
	assert.NotContains(t, view, "skip to complete process")

	d.PressKey('n')
	assert.Equal(t, domain.StageProtonRelease, d.Stage())
	view = d.View()
	assert.Contains(t, view, "Step 4: Proton (H⁺) Release")
	assert.Contains(t, view, "Strong electron-pulling → Strong acidic behavior")
	assert.NotContains(t, view, "next stage", "advance hint hidden at the final stage")
}

func TestTUI_AdvanceAtFinalStageShowsNotice(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('1')
	d.PressEnter()
	d.PressEnter()
	require.Equal(t, domain.StageProtonRelease, d.Stage())

	d.PressEnter()

	assert.Equal(t, domain.StageProtonRelease, d.Stage())
	assert.Contains(t, d.Notice(), "whole process")
	assert.Contains(t, d.View(), "whole process")

	last := d.Recorder.Events[len(d.Recorder.Events)-1]
	assert.ErrorIs(t, last.Err, domain.ErrNoTransition)

	// Any key clears the notice.
	d.PressType(tea.KeyDown)
	assert.Empty(t, d.Notice())
}

func TestTUI_ShowAllThenReset(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('1')

	d.PressKey('a')
	assert.Equal(t, ViewOverview, d.ActiveViewID())
	assert.True(t, d.Session.State().ShowAll())
	view := d.View()
	assert.Contains(t, view, "Complete Process Overview")
	assert.Contains(t, view, "ELECTRONEGATIVITY COMPARISON")

	d.PressEnter()
	assert.True(t, d.Session.State().ShowAll(), "advance is a no-op in overview")
	assert.Equal(t, domain.StageComparingValues, d.Stage())

	d.PressKey('r')
	assert.Equal(t, ViewSelect, d.ActiveViewID())
	s := d.Session.State()
	assert.Nil(t, s.Selected)
	assert.Equal(t, domain.StageSelecting, s.Stage())
	assert.False(t, s.ShowAll())
}

func TestTUI_OverviewScrolls(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 100, Height: 16})
	d.PressKey('2')
	d.PressKey('a')

	before := d.View()
	d.PressType(tea.KeyPgDown)
	assert.NotEqual(t, before, d.View())
	assert.True(t, d.Session.State().ShowAll())
}

func TestTUI_EscReturnsToSelection(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('3')
	d.PressEnter()

	d.PressEsc()

	assert.Equal(t, domain.StageSelecting, d.Stage())
	assert.Equal(t, ViewSelect, d.ActiveViewID())
}

func TestTUI_HeaderShowsSelectedMetal(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('5')

	view := d.View()
	assert.Contains(t, view, "Step 2 of 4")
	assert.Contains(t, view, "Fe (3+)")
}

func TestTUI_QuitKeys(t *testing.T) {
	t.Run("q", func(t *testing.T) {
		d := NewTestDriver(t, testApp(t))
		d.PressKey('q')
		assert.True(t, d.Quitting)
		assert.Empty(t, d.View())
	})
	t.Run("ctrl+c mid walkthrough", func(t *testing.T) {
		d := NewTestDriver(t, testApp(t))
		d.PressKey('1')
		d.PressCtrlC()
		assert.True(t, d.Quitting)
	})
}

func TestTUI_KeysIgnoredWithoutSelection(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')
	d.PressKey('n')
	d.PressKey('r')

	assert.Equal(t, domain.StageSelecting, d.Stage())
	assert.Empty(t, d.Recorder.Events, "global stage keys are not sent while selecting")
}

func TestAppModel_IntentMessagesReportErrors(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Send(advanceMsg{})
	assert.Equal(t, "Select a metal first.", d.Notice())

	d.Send(showAllMsg{})
	assert.Equal(t, "Select a metal first.", d.Notice())

	d.Send(selectMetalMsg{symbol: "Pb"})
	assert.Equal(t, "That metal is not in the catalog.", d.Notice())
	assert.Equal(t, domain.StageSelecting, d.Stage())

	d.Send(selectMetalMsg{symbol: "zn"})
	assert.Equal(t, "Zn", d.Session.State().Selected.Symbol)
}

func TestAppModel_PadsToTerminalHeight(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 60})

	lines := len(splitLines(d.View()))
	assert.GreaterOrEqual(t, lines, 60)
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
