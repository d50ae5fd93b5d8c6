// Package debugcontext provides a passive, append-only data structure that
// accumulates diagnostic entries (errors, warnings, info, traces) as the
// instruction decoder's pipeline progresses. It does not perform I/O or
// formatting — a separate renderer (e.g. the CLI's --trace flag) consumes
// the entries to produce output.
package debugcontext
