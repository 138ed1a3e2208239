package opsserver

import "testing"

func TestAllowlistAllowed(t *testing.T) {
	a, err := newCIDRAllowlist([]string{"10.0.0.0/8", " 192.168.1.0/24 "})
	if err != nil {
		t.Fatalf("newCIDRAllowlist: %v", err)
	}

	cases := []struct {
		remoteAddr string
		want       bool
	}{
		{"10.1.2.3:5000", true},
		{"192.168.1.9:80", true},
		{"192.168.2.9:80", false},
		{"8.8.8.8:53", false},
		{"10.255.255.255", true}, // bare IP, RealIP style
		{"garbage", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := a.allowed(tc.remoteAddr); got != tc.want {
			t.Errorf("allowed(%q) = %v; want %v", tc.remoteAddr, got, tc.want)
		}
	}
}
