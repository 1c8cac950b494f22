package handlers

import (
	"fmt"
	"io"
	"net/http"
)

// Sink accepts a complete response: headers are staged on Header, then Send
// writes the status line, the headers and the body in one call.
type Sink interface {
	Header() http.Header
	Send(status int, body []byte) error
}

// ResponseWriterSink adapts an http.ResponseWriter to a Sink
type ResponseWriterSink struct {
	w http.ResponseWriter
}

// NewResponseWriterSink creates a sink writing to w
func NewResponseWriterSink(w http.ResponseWriter) ResponseWriterSink {
	return ResponseWriterSink{w: w}
}

func (s ResponseWriterSink) Header() http.Header {
	return s.w.Header()
}

func (s ResponseWriterSink) Send(status int, body []byte) error {
	s.w.WriteHeader(status)

	n, err := s.w.Write(body)
	if err != nil {
		return fmt.Errorf("write response body: %w", err)
	}
	if n != len(body) {
		return fmt.Errorf("write response body: %w", io.ErrShortWrite)
	}
	return nil
}
