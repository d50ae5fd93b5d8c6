package debugcontext

import "sync"

// DebugContext is a passive, append-only data structure that accumulates
// diagnostic entries as the decoder works through a byte buffer. It is
// thread-safe for concurrent writes, though a single decode call never
// shares one across goroutines — callers fanning decoding out across
// independent buffers construct one DebugContext per buffer.
//
// Create a DebugContext exclusively through NewDebugContext(). It is passed
// to the decoder by reference; the decoder's top-level driver records into
// it a warning for each checker failure and a trace entry for each decoded
// instruction.
//
// The context does not perform I/O or formatting. A separate renderer
// consumes the entries to produce output.
type DebugContext struct {
	label   string   // Identifies the buffer being decoded (file path, "<hex>", ...).
	phase   string   // Current pipeline phase.
	entries []*Entry // Recorded entries in insertion order.
	mu      sync.Mutex
}

// NewDebugContext is the sole constructor. It returns a *DebugContext
// initialised with the buffer label, an empty entry list, and the phase
// set to "" (no phase).
func NewDebugContext(label string) *DebugContext {
	return &DebugContext{
		label:   label,
		phase:   "",
		entries: make([]*Entry, 0),
	}
}

// --- Phases ---

// SetPhase sets the current pipeline phase. Subsequent entries are tagged
// with this phase until it is changed again. The decoder uses "prefix",
// "opcode", and "checker".
func (c *DebugContext) SetPhase(name string) {
	c.mu.Lock()
	c.phase = name
	c.mu.Unlock()
}

// Phase returns the current pipeline phase name.
func (c *DebugContext) Phase() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// --- Location helpers ---

// Loc creates a Location spanning length bytes at offset, using the buffer
// label from the context.
func (c *DebugContext) Loc(offset, length int) Location {
	return Span(c.label, offset, length)
}

// At creates a single-byte Location at offset, using the buffer label from
// the context.
func (c *DebugContext) At(offset int) Location {
	return Span(c.label, offset, 0)
}

// --- Recording methods ---

// record is the internal method that creates an entry and appends it to
// the context. It is thread-safe.
func (c *DebugContext) record(severity string, location Location, message string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		severity: severity,
		phase:    c.phase,
		message:  message,
		location: location,
	}
	c.entries = append(c.entries, entry)
	return entry
}

// Error records an entry with severity "error" and returns the *Entry
// for optional chaining (WithSnippet, WithHint).
func (c *DebugContext) Error(location Location, message string) *Entry {
	return c.record(SeverityError, location, message)
}

// Warning records an entry with severity "warning" and returns the *Entry
// for optional chaining.
func (c *DebugContext) Warning(location Location, message string) *Entry {
	return c.record(SeverityWarning, location, message)
}

// Info records an entry with severity "info" and returns the *Entry
// for optional chaining.
func (c *DebugContext) Info(location Location, message string) *Entry {
	return c.record(SeverityInfo, location, message)
}

// Trace records an entry with severity "trace" and returns the *Entry
// for optional chaining. The decoder's top-level driver uses this to log
// the hex of the bytes consumed by each decoded instruction (re-read from
// the buffer after a rewind to the instruction's start offset).
func (c *DebugContext) Trace(location Location, message string) *Entry {
	return c.record(SeverityTrace, location, message)
}

// --- Querying entries ---

// Entries returns all recorded entries in insertion order.
func (c *DebugContext) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

// Errors returns only entries with severity "error".
func (c *DebugContext) Errors() []*Entry {
	return c.filter(SeverityError)
}

// Warnings returns only entries with severity "warning".
func (c *DebugContext) Warnings() []*Entry {
	return c.filter(SeverityWarning)
}

// HasErrors returns true if at least one "error" entry exists.
func (c *DebugContext) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of entries.
func (c *DebugContext) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Label returns the buffer label the context was created with.
func (c *DebugContext) Label() string {
	return c.label
}

// filter returns all entries matching the given severity.
func (c *DebugContext) filter(severity string) []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []*Entry
	for _, e := range c.entries {
		if e.severity == severity {
			result = append(result, e)
		}
	}
	return result
}
