package transporters

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tweet-tipping/pkg/log"
)

func TestStdout_Write_EmitsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdoutWithWriter(&buf)

	err := s.Write(*log.NewEntry(log.Info, "tip sent").With("tweet_id", "1800"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("output should be newline terminated")
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["msg"] != "tip sent" || got["tweet_id"] != "1800" {
		t.Errorf("decoded = %v", got)
	}
}

func TestText_Write_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	tx := NewTextWithWriter(&buf)

	entry := log.Entry{
		Timestamp: time.Date(2026, 1, 3, 9, 30, 0, 0, time.UTC),
		Level:     log.Warn,
		Message:   "oracle loading",
		RequestID: "req-9",
		Fields:    map[string]any{"tweet_id": "1800", "attempts": 21},
	}
	if err := tx.Write(entry); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "09:30:00 WARN  oracle loading attempts=21 tweet_id=1800 request_id=req-9\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTransporters_Names(t *testing.T) {
	if NewStdout().Name() != "stdout" || NewText().Name() != "text" {
		t.Error("unexpected transporter names")
	}
}
