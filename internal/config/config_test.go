package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "OPS_ADDR", "SERIAL_PORT", "SERIAL_BAUD", "DISPLAY_INTERVAL", "ALLOWED_SUBNETS"} {
		t.Setenv(key, "") // registers restore
		os.Unsetenv(key)
	}

	cfg := LoadFromEnv()

	if cfg.ListenAddr != "0.0.0.0:8080" {
		t.Errorf("ListenAddr = %q; want 0.0.0.0:8080", cfg.ListenAddr)
	}
	if cfg.OpsAddr != "127.0.0.1:9090" {
		t.Errorf("OpsAddr = %q; want 127.0.0.1:9090", cfg.OpsAddr)
	}
	if cfg.SerialPort != "" {
		t.Errorf("SerialPort = %q; want empty", cfg.SerialPort)
	}
	if cfg.SerialBaud != 115200 {
		t.Errorf("SerialBaud = %d; want 115200", cfg.SerialBaud)
	}
	if cfg.DisplayInterval != 2*time.Second {
		t.Errorf("DisplayInterval = %v; want 2s", cfg.DisplayInterval)
	}
	if len(cfg.AllowedSubnets) != 0 {
		t.Errorf("AllowedSubnets = %v; want none", cfg.AllowedSubnets)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:8888")
	t.Setenv("OPS_ADDR", "")
	t.Setenv("SERIAL_PORT", "/dev/ttyUSB0")
	t.Setenv("SERIAL_BAUD", "9600")
	t.Setenv("DISPLAY_INTERVAL", "500ms")
	t.Setenv("ALLOWED_SUBNETS", "10.0.0.0/8, 192.168.1.0/24 ,")

	cfg := LoadFromEnv()

	if cfg.ListenAddr != "127.0.0.1:8888" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.OpsAddr != "" {
		t.Errorf("OpsAddr = %q; explicitly empty OPS_ADDR must disable the ops server", cfg.OpsAddr)
	}
	if cfg.SerialPort != "/dev/ttyUSB0" {
		t.Errorf("SerialPort = %q", cfg.SerialPort)
	}
	if cfg.SerialBaud != 9600 {
		t.Errorf("SerialBaud = %d", cfg.SerialBaud)
	}
	if cfg.DisplayInterval != 500*time.Millisecond {
		t.Errorf("DisplayInterval = %v", cfg.DisplayInterval)
	}
	want := []string{"10.0.0.0/8", "192.168.1.0/24"}
	if len(cfg.AllowedSubnets) != len(want) {
		t.Fatalf("AllowedSubnets = %v; want %v", cfg.AllowedSubnets, want)
	}
	for i := range want {
		if cfg.AllowedSubnets[i] != want[i] {
			t.Errorf("AllowedSubnets[%d] = %q; want %q", i, cfg.AllowedSubnets[i], want[i])
		}
	}
}

func TestOpsAddrDisabled(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"off sentinel", "off", ""},
		{"off uppercase", "OFF", ""},
		{"set empty", "", ""},
		{"custom addr", "127.0.0.1:7000", "127.0.0.1:7000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPS_ADDR", tc.value)
			if got := LoadFromEnv().OpsAddr; got != tc.want {
				t.Errorf("OpsAddr = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestEnvFallbacksOnBadValues(t *testing.T) {
	t.Setenv("SERIAL_BAUD", "fast")
	t.Setenv("DISPLAY_INTERVAL", "soon")

	cfg := LoadFromEnv()

	if cfg.SerialBaud != 115200 {
		t.Errorf("SerialBaud = %d; want default 115200", cfg.SerialBaud)
	}
	if cfg.DisplayInterval != 2*time.Second {
		t.Errorf("DisplayInterval = %v; want default 2s", cfg.DisplayInterval)
	}
}
