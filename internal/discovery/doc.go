// Package discovery provides mDNS-based discovery of OTA endpoints.
//
// It complements the UDP broadcast listener: firmware built on the Arduino OTA
// stack advertises an "_arduino._tcp" service on the OTA port, so such devices
// can be found without waiting for a broadcast.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(5 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, device := range devices {
//	    fmt.Printf("Found: %s at %s\n", device.Instance, device.Address())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Devices must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
