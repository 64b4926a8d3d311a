// Package export models a chat export document and loads it from disk.
package export

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// ErrNoMessages indicates the document parsed but carries no messages list.
var ErrNoMessages = errors.New("export has no messages list")

// Export is the top-level shape of a Telegram Desktop chat export.
type Export struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	ID       int64     `json:"id"`
	Messages []Message `json:"messages"`
}

// Media type tags as they appear in the export.
const (
	MediaVideoMessage = "video_message"
	MediaVideoFile    = "video_file"
	MediaVoiceMessage = "voice_message"
	MediaSticker      = "sticker"
)

// Message is one message record. All fields are optional in the input;
// absence is represented by the zero value.
type Message struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	FromID       string `json:"from_id"`
	From         string `json:"from"`
	Photo        string `json:"photo"`
	MediaType    string `json:"media_type"`
	DateUnixtime string `json:"date_unixtime"`
}

// HasSender reports whether the message is attributed to a sender.
func (m *Message) HasSender() bool {
	return m.FromID != ""
}

// HasPhoto reports whether the message carries a photo attachment.
func (m *Message) HasPhoto() bool {
	return m.Photo != ""
}

// Time returns the message time in the local timezone. ok is false when
// date_unixtime is missing or not an integer.
func (m *Message) Time() (t time.Time, ok bool) {
	if m.DateUnixtime == "" {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(m.DateUnixtime, 10, 64)
	if err != nil || secs < 0 {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}

// Parse decodes an export document. A document without a messages array is
// rejected; individual message anomalies are not.
func Parse(data []byte) (*Export, error) {
	// Probe for the messages key first so a structurally different document
	// (for example a contact list export) fails with a specific error
	// instead of decoding to an empty struct.
	var probe struct {
		Messages json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if len(probe.Messages) == 0 {
		return nil, ErrNoMessages
	}

	var ex Export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if ex.Messages == nil {
		return nil, ErrNoMessages
	}
	return &ex, nil
}

// Load reads and parses an export file.
func Load(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export file: %w", err)
	}
	ex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ex, nil
}
