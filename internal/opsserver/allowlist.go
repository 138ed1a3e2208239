package opsserver

import (
	"net"
	"net/http"
	"strings"
)

// cidrAllowlist rejects callers whose remote IP falls outside the configured
// subnets. RealIP middleware runs before this, so proxied setups see the
// originating address.
type cidrAllowlist struct {
	nets []*net.IPNet
}

func newCIDRAllowlist(cidrs []string) (*cidrAllowlist, error) {
	a := &cidrAllowlist{nets: make([]*net.IPNet, 0, len(cidrs))}
	for _, c := range cidrs {
		_, n, err := net.ParseCIDR(strings.TrimSpace(c))
		if err != nil {
			return nil, err
		}
		a.nets = append(a.nets, n)
	}
	return a, nil
}

func (a *cidrAllowlist) allowed(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		// RealIP rewrites RemoteAddr to a bare IP with no port.
		host = remoteAddr
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	if ip == nil {
		return false
	}
	for _, n := range a.nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func (a *cidrAllowlist) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.allowed(r.RemoteAddr) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
