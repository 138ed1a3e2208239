package display

import (
	"bytes"
	"fmt"
	"strings"

	"unistat-gateway/internal/sysinfo"
)

// formatStatusLines renders a snapshot as OLED lines, trailing blank line as
// commit marker. Empty string when there is nothing worth showing.
func formatStatusLines(snap sysinfo.Snapshot) string {
	var b bytes.Buffer

	if snap.Mem.TotalKB > 0 {
		b.WriteString("MEM: ")
		b.WriteString(humanKB(snap.Mem.UsedKB))
		b.WriteByte('/')
		b.WriteString(humanKB(snap.Mem.TotalKB))
		b.WriteByte('\n')
	}
	if snap.Load1 > 0 {
		fmt.Fprintf(&b, "LOAD: %.2f\n", snap.Load1)
	}

	if b.Len() == 0 {
		return ""
	}
	b.WriteByte('\n') // commit
	return b.String()
}

// humanKB shortens a kilobyte count for a 16-char display line.
func humanKB(kb uint64) string {
	const (
		mb = 1 << 10 // kB per MiB
		gb = 1 << 20 // kB per GiB
	)
	switch {
	case kb >= gb:
		return trimZero(fmt.Sprintf("%.1fG", float64(kb)/gb))
	case kb >= mb:
		return trimZero(fmt.Sprintf("%.1fM", float64(kb)/mb))
	default:
		return fmt.Sprintf("%dK", kb)
	}
}

func trimZero(s string) string {
	if i := strings.Index(s, ".0"); i >= 0 {
		return s[:i] + s[i+2:]
	}
	return s
}
