package log

// Transporter delivers entries to one destination (stdout, a file, a collector).
type Transporter interface {
	Name() string

	// Write delivers a single entry. A returned error is reported on stderr
	// by the buffer and the entry is dropped for that transporter.
	Write(entry Entry) error

	// Close releases the destination. Write is not called afterwards.
	Close() error
}
