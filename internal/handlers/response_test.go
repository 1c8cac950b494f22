package handlers

import (
	"net/http"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestWriters(t *testing.T) {
	tests := []struct {
		name        string
		write       func(Sink, int, string) error
		contentType string
	}{
		{"json", WriteJSON, ContentTypeJSON},
		{"text", WriteText, ContentTypeText},
		{"html", WriteHTML, ContentTypeHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRecordingSink()
			body := "héllo" // multi-byte to check the declared length is in bytes

			err := tt.write(s, http.StatusTeapot, body)
			assert.NilError(t, err)

			assert.Check(t, cmp.Equal(s.sends, 1))
			assert.Check(t, cmp.Equal(s.status, http.StatusTeapot))
			assert.Check(t, cmp.Equal(string(s.body), body))
			assert.Check(t, cmp.Equal(s.header.Get("Content-Type"), tt.contentType))
			assert.Check(t, cmp.Equal(s.header.Get("Content-Length"), "6"))
		})
	}
}

func TestWriters_EmptyBody(t *testing.T) {
	s := newRecordingSink()

	assert.NilError(t, WriteText(s, http.StatusOK, ""))
	assert.Check(t, cmp.Equal(s.header.Get("Content-Length"), "0"))
	assert.Check(t, cmp.Len(s.body, 0))
}
