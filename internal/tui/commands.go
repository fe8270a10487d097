package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/appgrid/internal/catalog"
)

// ListenStoreCmd reads the next snapshot from the store channel.
// The model re-issues it after every StoreChangedMsg.
func ListenStoreCmd(updates <-chan catalog.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return StoreClosedMsg{}
		}
		return StoreChangedMsg{Snapshot: snap}
	}
}
