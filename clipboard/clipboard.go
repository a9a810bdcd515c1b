// Package clipboard provides text clipboards for controls that copy and paste.
package clipboard

import "sync"

// Clipboard reads and writes plain text.
type Clipboard interface {
	Available() bool
	Read() (string, error)
	Write(text string) error
}

// MemoryClipboard keeps the clipboard contents in process.
// A nil MemoryClipboard is usable and always empty.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// Available reports true.
func (c *MemoryClipboard) Available() bool {
	return true
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	if c == nil {
		return "", nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// Write replaces the stored text.
func (c *MemoryClipboard) Write(text string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

// UnavailableClipboard discards writes and reads as empty.
type UnavailableClipboard struct{}

// Available reports false.
func (UnavailableClipboard) Available() bool { return false }

// Read returns an empty string.
func (UnavailableClipboard) Read() (string, error) { return "", nil }

// Write does nothing.
func (UnavailableClipboard) Write(string) error { return nil }

var (
	_ Clipboard = (*MemoryClipboard)(nil)
	_ Clipboard = UnavailableClipboard{}
)
