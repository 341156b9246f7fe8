/* session_interface.go
 * Contains the interface the console writes its messages through, to enable mocking in tests
 */

package console

import (
	"fmt"
	"io"
)

// Session defines where console messages are sent. Every call is one message
type Session interface {
	Send(content string)
}

// WriterSession sends each message to an io.Writer as its own line
type WriterSession struct {
	w io.Writer
}

// Ensure WriterSession implements Session
var _ Session = (*WriterSession)(nil)

// NewWriterSession creates a session that writes to w, usually os.Stdout
func NewWriterSession(w io.Writer) *WriterSession {
	return &WriterSession{w: w}
}

// Send writes content followed by a newline
func (s *WriterSession) Send(content string) {
	fmt.Fprintln(s.w, content)
}
