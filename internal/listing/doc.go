// Package listing implements the presentation state of the travel listing
// screen.
//
// A Holder owns one State value. User intent arrives as an Action, is queued
// on a bounded channel, and is applied by a single worker goroutine, so
// transitions happen strictly in dispatch order without locks around the
// transition logic itself. Each transition replaces the whole State value;
// nothing is mutated in place.
//
// # States
//
// State is a closed union:
//   - Loading: before the worker has read the catalog
//   - Success: countries, selected country, selected place index
//   - Error: sink state carrying the error that produced it
//
// # Actions
//
// Action is a closed union:
//   - SelectCountry: pick a country by name, resetting the index to 0
//   - MoveToIndex: jump to a place index
//   - ItemSwiped: swipe to a place; the place is informational
//
// # Usage
//
//	h := listing.NewHolder(catalog.Static{},
//	    listing.WithFaultPolicy(listing.FaultIgnore),
//	)
//	states, cancel := h.Subscribe() // yields Loading first
//	defer cancel()
//
//	h.Start(ctx)
//	defer h.Close()
//
//	_ = h.Dispatch(ctx, listing.MoveToIndex{Index: 2})
//	for st := range states {
//	    render(st)
//	}
//
// # Faults
//
// Selecting an unknown country, moving before the catalog is loaded, an
// out-of-range index under IndexReject, and unknown action types are faults.
// Faults never stop the worker. Under FaultIgnore the state is left as it
// was; under FaultError the holder emits Error and stays there.
//
// # Wire format
//
// EncodeState/DecodeState and EncodeAction/DecodeAction convert to and from
// the JSON envelopes used by the stream server.
package listing
