// Package stream serves listing screens over WebSocket.
//
// Every connection to /ws gets its own listing.Holder, so each remote screen
// has independent state. The server writes every state the holder emits as
// a JSON state envelope and dispatches every action envelope the client
// sends. /healthz answers "ok" for liveness checks.
//
// # Wire Format
//
// Server to client, one text message per state:
//
//	{"type":"loading"}
//	{"type":"success","countries":[...],"selected_country":"Japan","selected_item_index":0}
//	{"type":"error","error":"load catalog: ..."}
//
// Client to server, one text message per action:
//
//	{"type":"select_country","country":"South Korea"}
//	{"type":"move_to_index","index":2}
//	{"type":"item_swiped","place":"Tokyo 1","index":1}
//
// Malformed actions are logged and dropped; the session continues.
//
// # Usage Example
//
//	srv := stream.New(&stream.Config{Addr: ":8765"})
//	if err := srv.Listen(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Serve blocks until ctx is done, then shuts down gracefully
//	if err := srv.Serve(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The Client type connects to a server and satisfies the same Dispatch and
// Subscribe contract as a local holder, so the terminal screen can drive
// either.
//
// # Thread Safety
//
// The server handles connections concurrently, each in its own goroutine.
// Per connection, a single writer goroutine owns all writes to the socket.
package stream
