// Package connectivity answers whether the machine can reach the internet
// at all, before a batch of pokemon is requested.
package connectivity

import (
	"context"
	"net"
	"time"
)

const (
	DefaultProbeAddress = "8.8.8.8:53"
	DefaultTimeout      = 2 * time.Second
)

// Check opens and closes a TCP connection to address.
func Check(ctx context.Context, address string, timeout time.Duration) bool {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
