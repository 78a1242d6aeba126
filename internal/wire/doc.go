// Package wire provides the canonical value model and encoder for the
// clockboard payload.
//
// The payload is the one externally observable artifact of the engine, so its
// bytes must be a pure function of the input. The encoder guarantees:
//   - object keys sorted by UTF-16 code units (RFC 8785 ordering)
//   - no insignificant whitespace and no HTML escaping
//   - NFC-normalized strings
//   - numbers rendered by fixed rules (Decimal, Number), never by %v
//   - NaN and Inf rejected rather than written
//
// wire imports nothing internal.
package wire
