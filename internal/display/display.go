package display

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"unistat-gateway/internal/sysinfo"
)

// StatusDisplay pushes a short host-stats summary to a character OLED over
// USB serial. The port is opened lazily and dropped on write failure so an
// unplugged display never takes the gateway down.
type StatusDisplay struct {
	mu sync.Mutex

	portName string
	baud     int

	port serial.Port
	last string // last committed payload (normalized)
}

// New creates the bridge. portName can be "/dev/ttyUNISTAT_OLED" (recommended via udev).
func New(portName string, baud int) *StatusDisplay {
	if baud <= 0 {
		baud = 115200
	}
	return &StatusDisplay{
		portName: portName,
		baud:     baud,
	}
}

// Run polls sample on an interval and writes the humanized summary whenever
// it changes. Returns when ctx is done.
func (d *StatusDisplay) Run(ctx context.Context, sample func(context.Context) sysinfo.Snapshot, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			d.Close()
			return
		case <-t.C:
			payload := formatStatusLines(sample(ctx))
			if payload == "" || !d.shouldSend(payload) {
				continue
			}

			if err := d.send(payload); err != nil {
				log.Printf("display: send failed (%s): %v", d.portName, err)
				d.dropPort()
			}
		}
	}
}

func (d *StatusDisplay) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.port != nil {
		_ = d.port.Close()
		d.port = nil
	}
}

func (d *StatusDisplay) shouldSend(payload string) bool {
	n := normalizePayload(payload)
	d.mu.Lock()
	defer d.mu.Unlock()
	if n == d.last {
		return false
	}
	d.last = n
	return true
}

func (d *StatusDisplay) send(payload string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port == nil {
		mode := &serial.Mode{BaudRate: d.baud}
		p, err := serial.Open(d.portName, mode)
		if err != nil {
			return err
		}
		d.port = p
	}

	if !strings.HasSuffix(payload, "\n\n") {
		payload += "\n"
	}

	_, err := d.port.Write([]byte(payload))
	return err
}

func (d *StatusDisplay) dropPort() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.port != nil {
		_ = d.port.Close()
		d.port = nil
	}
}

func normalizePayload(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}
