// Package service is the thin orchestration layer shared by cmd/armdis and
// api: given a loader.WordReader and an isa.Decoder it produces a stream
// of Entry values, the disassembly-as-data shape consumed by both the
// listing writer and the JSON API responses.
package service

// Entry is a single disassembled instruction: its address, the raw word
// it was decoded from, the rendered mnemonic text, and how many
// half-words it consumed (always 1 in ARM mode; 1 or 2 in Thumb mode).
type Entry struct {
	Address    uint64 `json:"address"`
	Word       uint32 `json:"word"`
	Mode       string `json:"mode"` // "arm" or "thumb"
	Mnemonic   string `json:"mnemonic"`
	Halfwords  int    `json:"halfwords"`
	Recognized bool   `json:"recognized"`
}
