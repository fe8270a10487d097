package tui

import "github.com/mmcdole/appgrid/internal/catalog"

// Message types for the TUI

// StoreChangedMsg carries the catalog state after a store mutation
type StoreChangedMsg struct {
	Snapshot catalog.Snapshot
}

// StoreClosedMsg signals that no further store updates will arrive
type StoreClosedMsg struct{}
