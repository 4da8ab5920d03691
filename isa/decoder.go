package isa

import "sync/atomic"

// Decoder wraps the stateless ARM/Thumb decode functions with one piece
// of shared state: a running count of encodings that were not
// recognized. A zero-value Decoder is ready to use.
type Decoder struct {
	notRecognized atomic.Uint64
}

// NotRecognized returns the number of decode calls, across both modes,
// that have returned an unrecognized encoding since this Decoder was
// created. Safe to call concurrently with DecodeARM/DecodeThumb.
func (d *Decoder) NotRecognized() uint64 {
	return d.notRecognized.Load()
}

// DecodeARM decodes a 32-bit ARM-mode word under profile. On success the
// rendered text has the register-aliasing post-pass applied; on failure
// it returns "n/a" and bumps the not-recognized counter.
func (d *Decoder) DecodeARM(word uint32, profile Profile) string {
	text, ok := DecodeARM(word, profile)
	if !ok {
		d.notRecognized.Add(1)
		return "n/a"
	}
	return AliasSpecialRegisters(text)
}

// DecodeThumb decodes a Thumb-mode half-word (word32's low 16 bits, with
// the high 16 bits available as BL/BLX lookahead) under profile. Returns
// the rendered text (post-pass applied on success, "n/a" on failure) and
// the number of half-words consumed (1, or 2 for a matched BL/BLX pair).
func (d *Decoder) DecodeThumb(word32 uint32, profile Profile) (string, int) {
	text, ok, halfwords := DecodeThumb(word32, profile)
	if !ok {
		d.notRecognized.Add(1)
		return "n/a", halfwords
	}
	return AliasSpecialRegisters(text), halfwords
}
