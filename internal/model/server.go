package model

import "net"

// SecurityLayer abstracts listener creation so the server can run with
// or without TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}
