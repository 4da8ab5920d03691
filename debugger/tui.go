// Package debugger implements a read-only disassembly browser: a
// scrollable view over a decoded binary with jump-to-address. It never touches
// execution state -- semantic simulation of instructions is an explicit
// non-goal. It also hosts a page dumping the entire 16-bit T-mode opcode
// space.
package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/arm-disassembler/isa"
	"github.com/lookbusy1344/arm-disassembler/loader"
	"github.com/lookbusy1344/arm-disassembler/service"
)

// TUI is the text user interface for browsing a decoded binary.
type TUI struct {
	App          *tview.Application
	Pages        *tview.Pages
	ListingView  *tview.TextView
	StatusView   *tview.TextView
	CommandInput *tview.InputField
	OpcodeView   *tview.Table

	data    []byte
	base    uint64
	profile isa.Profile
	mode    string // "arm" or "thumb"
	decoder isa.Decoder
	entries []service.Entry
}

// NewTUI builds a browser over data (whose first byte is at address
// base), starting in the given mode ("arm" or "thumb") and profile.
func NewTUI(data []byte, base uint64, profile isa.Profile, mode string) *TUI {
	t := &TUI{
		App:     tview.NewApplication(),
		data:    data,
		base:    base,
		profile: profile,
		mode:    mode,
	}
	t.decode()
	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

// decode re-runs the decoder over the whole buffer in the current mode.
func (t *TUI) decode() {
	t.decoder = isa.Decoder{}
	r := loader.NewWordReader(t.data, t.base)
	if t.mode == "thumb" {
		t.entries = service.DisassembleThumb(r, &t.decoder, t.profile)
	} else {
		t.entries = service.DisassembleARM(r, &t.decoder, t.profile)
	}
}

func (t *TUI) initializeViews() {
	t.ListingView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetRegions(true).
		SetWrap(false)
	t.ListingView.SetBorder(true).SetTitle(" Disassembly ")

	t.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.StatusView.SetBorder(true).SetTitle(" Status ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command (goto <addr>, mode arm|thumb, opcodes) ")
	t.CommandInput.SetDoneFunc(t.handleCommand)

	t.OpcodeView = tview.NewTable().SetBorders(false)
	t.OpcodeView.SetBorder(true).SetTitle(" T-mode opcode space (0x0000-0xFFFF) ")
	t.populateOpcodeSpace()
}

func (t *TUI) buildLayout() {
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.ListingView, 0, 5, false).
		AddItem(t.StatusView, 3, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("listing", mainLayout, true, true).
		AddPage("opcodes", t.OpcodeView, true, false)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		case tcell.KeyF2:
			t.toggleMode()
			return nil
		case tcell.KeyF3:
			t.showOpcodeSpace()
			return nil
		case tcell.KeyEsc:
			t.showListing()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := strings.TrimSpace(t.CommandInput.GetText())
	t.CommandInput.SetText("")
	if cmd == "" {
		return
	}
	t.executeCommand(cmd)
}

func (t *TUI) executeCommand(cmd string) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case "goto":
		if len(fields) < 2 {
			t.setStatus("usage: goto <addr>")
			return
		}
		addr, err := parseAddress(fields[1])
		if err != nil {
			t.setStatus(fmt.Sprintf("invalid address %q: %v", fields[1], err))
			return
		}
		t.jumpTo(addr)
	case "mode":
		if len(fields) < 2 || (fields[1] != "arm" && fields[1] != "thumb") {
			t.setStatus("usage: mode arm|thumb")
			return
		}
		t.mode = fields[1]
		t.decode()
		t.RefreshAll()
	case "opcodes":
		t.showOpcodeSpace()
	default:
		t.setStatus(fmt.Sprintf("unknown command: %s", fields[0]))
	}
}

func parseAddress(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

func (t *TUI) toggleMode() {
	if t.mode == "thumb" {
		t.mode = "arm"
	} else {
		t.mode = "thumb"
	}
	t.decode()
	t.RefreshAll()
}

func (t *TUI) jumpTo(addr uint64) {
	for _, e := range t.entries {
		if e.Address >= addr {
			t.ListingView.Highlight(regionTag(e.Address)).ScrollToHighlight()
			return
		}
	}
	t.setStatus(fmt.Sprintf("address %#x not in range", addr))
}

func regionTag(addr uint64) string {
	return fmt.Sprintf("a%x", addr)
}

func (t *TUI) setStatus(s string) {
	t.StatusView.SetText(s)
}

// RefreshAll redraws the listing and status panels from current state.
func (t *TUI) RefreshAll() {
	t.updateListingView()
	t.updateStatusView()
	t.App.Draw()
}

func (t *TUI) updateListingView() {
	t.ListingView.Clear()
	var lines []string
	for _, e := range t.entries {
		color := "white"
		if !e.Recognized {
			color = "red"
		}
		lines = append(lines, fmt.Sprintf(`["%s"][%s]%08X: %s[white][""]`, regionTag(e.Address), color, e.Address, e.Mnemonic))
	}
	t.ListingView.SetText(strings.Join(lines, "\n"))
}

func (t *TUI) updateStatusView() {
	t.StatusView.SetText(fmt.Sprintf(
		"mode=%s profile=%s entries=%d not-recognized=%d  (F2 toggle mode, F3 opcode space, Ctrl+L refresh)",
		t.mode, t.profile, len(t.entries), t.decoder.NotRecognized()))
}

// populateOpcodeSpace fills the opcode-space table: every 16-bit T-mode
// word, decoded with a zero lookahead half-word, one row per word.
func (t *TUI) populateOpcodeSpace() {
	var d isa.Decoder
	for w := 0; w <= 0xFFFF; w++ {
		text, _ := d.DecodeThumb(uint32(w), isa.V5TE)
		row := t.OpcodeView.GetRowCount()
		t.OpcodeView.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%04X", w)))
		t.OpcodeView.SetCell(row, 1, tview.NewTableCell(text))
	}
}

func (t *TUI) showOpcodeSpace() {
	t.Pages.SwitchToPage("opcodes")
	t.App.SetFocus(t.OpcodeView)
}

func (t *TUI) showListing() {
	t.Pages.SwitchToPage("listing")
	t.App.SetFocus(t.CommandInput)
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	t.RefreshAll()
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
