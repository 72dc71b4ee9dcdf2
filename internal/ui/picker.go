package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tcr/internal/domain"
)

// Selection is what the user chose in the picker
type Selection struct {
	Target  domain.RunTarget // KindFile for the whole file
	Browser domain.Browser
}

// Picker lets the user choose a declaration and a browser interactively
type Picker struct {
	app *tview.Application
}

// NewPicker creates a new Picker
func NewPicker() *Picker {
	return &Picker{app: tview.NewApplication()}
}

// PickerItems builds the left-hand entries: the whole file first, then every declaration
func PickerItems(decls []domain.Declaration) []domain.RunTarget {
	items := []domain.RunTarget{{Kind: domain.KindFile}}
	for _, d := range decls {
		items = append(items, domain.RunTarget{Kind: d.Kind, Name: d.Name})
	}
	return items
}

func itemText(target domain.RunTarget) string {
	switch target.Kind {
	case domain.KindFile:
		return "[yellow]Whole file[white]"
	case domain.KindFixture:
		return fmt.Sprintf("[magenta]fixture[white] %s", tview.Escape(target.Name))
	default:
		return fmt.Sprintf("  [green]test[white] %s", tview.Escape(target.Name))
	}
}

// Pick shows the declarations of a file and the available browsers. It returns false when the
// user cancels with Esc or Ctrl+C.
func (p *Picker) Pick(file string, decls []domain.Declaration, browsers []string) (Selection, bool, error) {
	items := PickerItems(decls)
	var selection Selection
	chosen := false

	targets := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, item := range items {
		targets.AddItem(itemText(item), "", 0, nil)
	}
	targets.SetBorder(true).SetTitle(" Target ")

	browserList := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, b := range browsers {
		browserList.AddItem(b, "", 0, nil)
	}
	browserList.SetBorder(true).SetTitle(" Browser ")

	for _, l := range []*tview.List{targets, browserList} {
		l.SetMainTextColor(tview.Styles.PrimaryTextColor).
			SetSelectedTextColor(tcell.ColorWhite).
			SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	}

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s | ↑↓ navigate, Enter/→ choose, ← back, Esc to cancel ", tview.Escape(file)))

	targets.SetSelectedFunc(func(int, string, string, rune) {
		p.app.SetFocus(browserList)
	})
	browserList.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		browser, ok := domain.ParseBrowser(browsers[index])
		if !ok {
			return
		}
		selection = Selection{Target: items[targets.GetCurrentItem()], Browser: browser}
		chosen = true
		p.app.Stop()
	})

	targets.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight:
			p.app.SetFocus(browserList)
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			p.app.Stop()
			return nil
		}
		return event
	})
	browserList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			p.app.SetFocus(targets)
			return nil
		case tcell.KeyCtrlC:
			p.app.Stop()
			return nil
		}
		return event
	})

	columns := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(targets, 0, 2, true).
		AddItem(browserList, 0, 1, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(columns, 0, 1, true)

	if err := p.app.SetRoot(layout, true).SetFocus(targets).Run(); err != nil {
		return Selection{}, false, fmt.Errorf("run picker: %w", err)
	}
	return selection, chosen, nil
}
