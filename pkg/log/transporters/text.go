package transporters

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"tweet-tipping/pkg/log"
)

// Text writes human-readable lines, used by the CLI:
//
//	15:04:05 INFO  tip sent tweet_id=1800 tx_hash=0xab
type Text struct {
	writer io.Writer
}

// NewText writes to os.Stderr so command output on stdout stays clean.
func NewText() *Text {
	return &Text{writer: os.Stderr}
}

// NewTextWithWriter writes to w.
func NewTextWithWriter(w io.Writer) *Text {
	return &Text{writer: w}
}

func (t *Text) Name() string { return "text" }

func (t *Text) Write(entry log.Entry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", entry.Timestamp.Format("15:04:05"), entry.Level, entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	if entry.RequestID != "" {
		fmt.Fprintf(&b, " request_id=%s", entry.RequestID)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(t.writer, b.String())
	return err
}

func (t *Text) Close() error { return nil }
