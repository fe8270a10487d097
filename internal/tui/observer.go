package tui

import "github.com/mmcdole/appgrid/internal/catalog"

// ChannelObserver adapts catalog.Observer to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan catalog.Snapshot
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan catalog.Snapshot) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnChange sends the snapshot without blocking the store. When the channel
// is full the oldest pending snapshot is dropped; snapshots carry the whole
// state, so only the latest matters.
func (o *ChannelObserver) OnChange(snap catalog.Snapshot) {
	select {
	case o.ch <- snap:
		return
	default:
	}
	select {
	case <-o.ch:
	default:
	}
	select {
	case o.ch <- snap:
	default: // Non-blocking if channel still full
	}
}
