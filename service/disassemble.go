package service

import (
	"github.com/lookbusy1344/arm-disassembler/isa"
	"github.com/lookbusy1344/arm-disassembler/loader"
)

// DisassembleARM walks r as a stream of 32-bit ARM-mode words and returns
// one Entry per word.
func DisassembleARM(r *loader.WordReader, d *isa.Decoder, profile isa.Profile) []Entry {
	var entries []Entry
	for {
		word, address, ok := r.ReadWord()
		if !ok {
			break
		}
		text := d.DecodeARM(word, profile)
		entries = append(entries, Entry{
			Address:    address,
			Word:       word,
			Mode:       "arm",
			Mnemonic:   text,
			Halfwords:  1,
			Recognized: text != "n/a",
		})
	}
	return entries
}

// DisassembleThumb walks r as a stream of Thumb-mode half-words,
// consulting the next half-word as BL/BLX lookahead where needed, and
// returns one Entry per decoded instruction (1 or 2 half-words wide).
func DisassembleThumb(r *loader.WordReader, d *isa.Decoder, profile isa.Profile) []Entry {
	var entries []Entry
	for {
		low, address, ok := r.ReadHalfword()
		if !ok {
			break
		}
		high, _ := r.PeekHalfword(0)
		word32 := uint32(low) | uint32(high)<<16

		text, halfwords := d.DecodeThumb(word32, profile)
		if halfwords == 2 {
			r.Skip(2) // consume the lookahead half-word we just peeked
		}

		entries = append(entries, Entry{
			Address:    address,
			Word:       word32,
			Mode:       "thumb",
			Mnemonic:   text,
			Halfwords:  halfwords,
			Recognized: text != "n/a",
		})
	}
	return entries
}
