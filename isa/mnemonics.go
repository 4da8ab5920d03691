package isa

// condSuffixes holds the two-letter textual suffix for condition codes
// 0..15. Index 14 (AL) and 15 (NV) are never appended directly - AL
// renders with no suffix at all, and NV triggers alternate decoding.
var condSuffixes = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "", "",
}

// condSuffix renders the condition suffix for cond in 0..13, or the empty
// string for AL (14). Callers handle NV (15) themselves since it re-encodes
// unrelated instruction forms rather than being a plain predicate.
func condSuffix(cond uint32) string {
	if cond > 13 {
		return ""
	}
	return condSuffixes[cond]
}

// dpMnemonics maps the 4-bit data-processing opcode field to its mnemonic.
var dpMnemonics = [16]string{
	"and", "eor", "sub", "rsb", "add", "adc", "sbc", "rsc",
	"tst", "teq", "cmp", "cmn", "orr", "mov", "bic", "mvn",
}

// dpIsCompare reports whether opcode is one of TST/TEQ/CMP/CMN (8-11):
// these always set flags and never take a destination register.
func dpIsCompare(opcode uint32) bool {
	return opcode >= 0x8 && opcode <= 0xB
}

// dpIsMoveOnly reports whether opcode is MOV/MVN (13, 15): these take only
// a destination and a shifter operand, no first source register.
func dpIsMoveOnly(opcode uint32) bool {
	return opcode == 0xD || opcode == 0xF
}

// shiftNames maps the 2-bit shift-type field to its mnemonic.
var shiftNames = [4]string{"lsl", "lsr", "asr", "ror"}

// lsMultiAddrModes maps the 2-bit (P:U) code, P as the high bit, to the
// LDM/STM addressing mode suffix: 00=da, 01=ia, 10=db, 11=ib.
var lsMultiAddrModes = [4]string{"da", "ia", "db", "ib"}

// thumbALUMnemonics are the 16 Thumb "format 4" ALU-operations mnemonics.
var thumbALUMnemonics = [16]string{
	"and", "eor", "lsl", "lsr", "asr", "adc", "sbc", "ror",
	"tst", "neg", "cmp", "cmn", "orr", "mul", "bic", "mvn",
}
