package httpadapter

import (
	"fmt"
	"net"

	"golang.org/x/net/netutil"
)

// Listen opens the node's TCP listener. With maxConns > 0 at most that many
// connections are served at once; further peers wait in the accept backlog.
func Listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}
