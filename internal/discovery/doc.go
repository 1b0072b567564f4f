// Package discovery announces and finds travelist stream servers with mDNS.
//
// A stream server started with --advertise registers itself under the
// "_travelist._tcp" service type. The scan command browses for that type
// and lists every server that answered within the timeout.
//
// # Usage Example
//
//	// Announce until ctx is done
//	go discovery.Announce(ctx, "living-room", 8765, discovery.TXTRecords(discovery.DefaultPath))
//
//	// Browse for servers with a 5-second timeout
//	scanner := discovery.NewScanner()
//	endpoints, err := scanner.Scan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ep := range endpoints {
//	    fmt.Println(ep.Instance, ep.URL())
//	}
//
// # TXT Records
//
//   - version: server version (e.g., "travelist/v1.2.0")
//   - path: WebSocket path (default "/ws")
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
