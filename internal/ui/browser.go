package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"procon/internal/config"
	"procon/internal/domain"
)

// Browser displays the sample cases in an interactive TUI
type Browser struct {
	config *config.Config
	store  CaseStore
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config, store CaseStore) *Browser {
	return &Browser{
		config: cfg,
		store:  store,
	}
}

// View runs the browser until the user exits
func (b *Browser) View() error {
	cases, err := b.store.List()
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No testcases found")
		return nil
	}

	app := tview.NewApplication()

	// Testcase list (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 3, false)

	pages := tview.NewPages()

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(" Testcases (%d) | ↑↓ navigate, → view, ← back, [yellow]D[white] delete, Q to exit ", len(cases)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(cases) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		tc := cases[index]
		statsView.SetText(formatCaseStats(tc))

		input, output, err := b.store.Read(tc.ID)
		if err != nil {
			detailsView.SetText(fmt.Sprintf("[red]%s[white]", tview.Escape(err.Error())))
			return
		}
		detailsView.SetText(formatCaseDetails(input, output))
		detailsView.ScrollToBeginning()
	}

	reload := func(selected int) error {
		var err error
		cases, err = b.store.List()
		if err != nil {
			return err
		}
		list.Clear()
		for _, tc := range cases {
			list.AddItem(caseListText(tc), "", 0, nil)
		}
		if selected >= len(cases) {
			selected = len(cases) - 1
		}
		if selected >= 0 {
			list.SetCurrentItem(selected)
		}
		updateHeader()
		updateDetails()
		return nil
	}

	var loopErr error
	confirmDelete := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(cases) {
			return
		}
		id := cases[index].ID
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Delete %s? Following numbered cases are shifted down.", id)).
			AddButtons([]string{"Delete", "Cancel"}).
			SetDoneFunc(func(_ int, label string) {
				pages.RemovePage("confirm")
				app.SetFocus(list)
				if label != "Delete" {
					return
				}
				if err := b.store.DelCase(id); err != nil {
					loopErr = err
					app.Stop()
					return
				}
				if err := reload(index); err != nil {
					loopErr = err
					app.Stop()
				}
			})
		pages.AddPage("confirm", modal, true, true)
		app.SetFocus(modal)
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'd', 'D':
				confirmDelete()
				return nil
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	if err := reload(0); err != nil {
		return err
	}

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)
	pages.AddPage("main", mainLayout, true, true)

	if err := app.SetRoot(pages, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return loopErr
}

// caseListText formats a list entry, dimming incomplete cases
func caseListText(tc domain.Testcase) string {
	if !tc.Complete() {
		return fmt.Sprintf("[gray]%s (incomplete)[white]", tview.Escape(tc.ID))
	}
	return tview.Escape(tc.ID)
}

// formatCaseStats formats the header line for a testcase
func formatCaseStats(tc domain.Testcase) string {
	return fmt.Sprintf("[cyan]id:[white] [yellow]%s[white]  [cyan]files:[white] %s, %s\n",
		tview.Escape(tc.ID),
		tview.Escape(domain.InputFileName(tc.ID)),
		tview.Escape(domain.OutputFileName(tc.ID)))
}

// formatCaseDetails formats input and output for display using tview color tags
func formatCaseDetails(input, output string) string {
	var builder strings.Builder
	builder.WriteString("[yellow]Input:[white]\n")
	builder.WriteString(tview.Escape(input))
	if !strings.HasSuffix(input, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString("\n[yellow]Output:[white]\n")
	builder.WriteString(tview.Escape(output))
	return builder.String()
}
