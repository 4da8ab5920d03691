package isa

import "fmt"

// extraLSAddressing renders one of the four forms used by the "extra"
// load/store instructions (LDRH/STRH/LDRSB/LDRSH/LDRD/STRD):
//
//	offset:     [rn, #±imm]       or [rn, ±rm]
//	pre-index:  [rn, #±imm]!      or [rn, ±rm]!
//	post-index: [rn], #±imm       or [rn], ±rm
//
// Post-indexed forms require w==false (writeback bit must be 0); the
// caller is responsible for treating w==true with p==false as
// unpredictable and suppressing the rendering.
func extraLSAddressing(rn uint32, p, u, w bool, immediate bool, offsetImm uint32, offsetReg uint32) string {
	var offset string
	if immediate {
		v := int32(offsetImm)
		if !u {
			v = -v
		}
		offset = signedHex(v)
	} else {
		sign := ""
		if !u {
			sign = "-"
		}
		offset = sign + regName(offsetReg)
	}

	base := regName(rn)
	switch {
	case p && w:
		return fmt.Sprintf("[%s, %s]!", base, offset)
	case p && !w:
		return fmt.Sprintf("[%s, %s]", base, offset)
	default: // !p: post-indexed
		return fmt.Sprintf("[%s], %s", base, offset)
	}
}

// wordByteAddressing renders the addressing mode for LDR/STR/LDRB/STRB
// word-or-byte immediate/register-offset forms. Returns the rendered
// addressing text and, for the post-indexed+W==1 case, whether the
// translation-mode ("t") suffix applies instead of a writeback marker.
func wordByteAddressing(rn uint32, p, u, w bool, offset string) (text string, translation bool) {
	base := regName(rn)
	switch {
	case p && w:
		return fmt.Sprintf("[%s, %s]!", base, offset), false
	case p && !w:
		return fmt.Sprintf("[%s, %s]", base, offset), false
	case !p && w:
		return fmt.Sprintf("[%s], %s", base, offset), true
	default:
		return fmt.Sprintf("[%s], %s", base, offset), false
	}
}

// ldmAddrMode renders the LDM/STM addressing-mode mnemonic suffix from the
// 2-bit (P:U) code, P as the high bit.
func ldmAddrMode(p, u bool) string {
	idx := 0
	if p {
		idx |= 2
	}
	if u {
		idx |= 1
	}
	return lsMultiAddrModes[idx]
}

// coprocessorLSAddressing renders one of the four forms used by
// coprocessor load/store instructions, whose 8-bit immediate is scaled
// by 4.
func coprocessorLSAddressing(rn uint32, p, u, w bool, imm8 uint32) string {
	base := regName(rn)
	offsetVal := int32(imm8) * 4
	if !u {
		offsetVal = -offsetVal
	}
	offset := signedHex(offsetVal)

	switch {
	case !p && !w:
		return fmt.Sprintf("[%s], {0x%X}", base, imm8)
	case !p && w:
		return fmt.Sprintf("[%s], %s", base, offset)
	case p && !w:
		return fmt.Sprintf("[%s, %s]", base, offset)
	default:
		return fmt.Sprintf("[%s, %s]!", base, offset)
	}
}
