package statserver

import (
	"bytes"
	"fmt"
	"strconv"

	"unistat-gateway/internal/sysinfo"
)

type Header struct {
	Name  string
	Value string
}

// Response is a hand-built HTTP/1.1 response. Headers keep insertion order;
// Content-Length always matches the byte length of Body.
type Response struct {
	StatusLine string
	Headers    []Header
	Body       string
}

const pageTemplate = `<html>
  <head>
    <meta charset="UTF-8">
    <title>Unikernel Stats</title>
  </head>
  <body>
    <h1>Hello, Unikernel World!</h1>
    <p>Here are some system stats:</p>
    <ul>
      <li><strong>Total Memory:</strong> %d kB</li>
      <li><strong>Used Memory:</strong> %d kB</li>
    </ul>
  </body>
</html>
`

// BuildResponse renders the stats page for one memory sample. It performs no
// I/O and cannot fail.
func BuildResponse(mem sysinfo.MemStats) Response {
	body := fmt.Sprintf(pageTemplate, mem.TotalKB, mem.UsedKB)
	return Response{
		StatusLine: "HTTP/1.1 200 OK",
		Headers: []Header{
			{"Content-Type", "text/html; charset=UTF-8"},
			{"Content-Length", strconv.Itoa(len(body))},
		},
		Body: body,
	}
}

// Bytes serializes the response for the wire: status line, headers, blank
// line, body, CRLF line endings throughout the head.
func (r Response) Bytes() []byte {
	var b bytes.Buffer
	b.WriteString(r.StatusLine)
	b.WriteString("\r\n")
	for _, h := range r.Headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(r.Body)
	return b.Bytes()
}
