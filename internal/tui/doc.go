// Package tui implements the interactive terminal screen for travelist.
//
// The screen is the rendering collaborator of a listing.Holder: it
// subscribes to the holder's states, renders whatever arrives, and turns key
// presses into listing actions. It never changes the selection itself; every
// change round-trips through the holder so the local and remote (stream)
// screens behave the same.
//
// # Layout
//
// Every view is drawn inside a full-terminal frame: a header with the
// application name and version, the content area, and a footer with
// context-sensitive help from bubbles/help.
//
//   - Loading: spinner while the catalog is read
//   - Success: country tabs, the current place card, paginator dots and a
//     progress bar showing the position within the country
//   - Error: error box; only quitting is possible
//
// # Key Bindings
//
//   - ←/h, →/l: swipe to the neighbouring place (stops at either end)
//   - 1-9: jump to a place index
//   - c: open the country selector (bubbles/list, filterable)
//   - enter: select the highlighted country, esc: close the selector
//   - ?: toggle full help, q: quit
//
// # Usage Example
//
//	holder := listing.NewHolder(catalog.Static{})
//	holder.Start(ctx)
//	defer holder.Close()
//
//	if err := tui.Run(ctx, holder); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The Bubble Tea framework ensures thread safety through message passing.
// States are read from the subscription channel by a command and delivered
// as messages, so all model updates occur in a single goroutine.
package tui
