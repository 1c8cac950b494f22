package handlers

import (
	"strconv"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// MethodNotAllowed is the message returned for any non-GET request
const MethodNotAllowed = "Method Not Allowed"

// WriteJSON writes a JSON response
func WriteJSON(s Sink, status int, body string) error {
	return write(s, status, ContentTypeJSON, body)
}

// WriteText writes a plain text response
func WriteText(s Sink, status int, body string) error {
	return write(s, status, ContentTypeText, body)
}

// WriteHTML writes an HTML response
func WriteHTML(s Sink, status int, body string) error {
	return write(s, status, ContentTypeHTML, body)
}

func write(s Sink, status int, contentType, body string) error {
	b := []byte(body)

	h := s.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(b)))

	return s.Send(status, b)
}
