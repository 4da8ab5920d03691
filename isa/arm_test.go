package isa

import (
	"strings"
	"testing"
)

func TestDecodeARMWorkedExamples(t *testing.T) {
	cases := []struct {
		word uint32
		want string
	}{
		{0xE3A00001, "mov r0, #0x1"},
		{0xE92D4010, "stmdb sp!, {r4,lr}"},
		{0xEAFFFFFE, "b #0x0"},
	}
	for _, c := range cases {
		text, ok := DecodeARM(c.word, V5TE)
		if !ok {
			t.Fatalf("DecodeARM(%#x) not recognized", c.word)
		}
		got := AliasSpecialRegisters(text)
		if got != c.want {
			t.Errorf("DecodeARM(%#x) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestDecodeARMConditionSuffixNeverAL(t *testing.T) {
	// cond field 0xE is AL; any opcode with that condition must render
	// with no "al" suffix.
	word := uint32(0xE1A00000) // mov r0, r0 (nop idiom), cond=AL
	text, ok := DecodeARM(word, V5TE)
	if !ok {
		t.Fatalf("DecodeARM(%#x) not recognized", word)
	}
	if containsALSuffix(text) {
		t.Errorf("DecodeARM(%#x) = %q contains an AL suffix", word, text)
	}
}

func containsALSuffix(s string) bool {
	for i := 0; i+2 <= len(s); i++ {
		if s[i] == 'a' && s[i+1] == 'l' && (i+2 == len(s) || s[i+2] == ' ') {
			return true
		}
	}
	return false
}

func TestCoprocessorRegistersSurviveAliasPass(t *testing.T) {
	// CDP with CRd=13: coprocessor register 13 must render as "c13", and
	// must not be rewritten to "csp" by the rN special-register alias
	// pass that runs over the whole rendered string.
	word := uint32(13 << 12) // crn=0, crd=13, crm=0, cpNum=0, opc1=0, opc2=0, bit4=0 (CDP)
	text, ok := decodeCDPOrMCR(word, "", false)
	if !ok {
		t.Fatalf("decodeCDPOrMCR(%#x) not recognized", word)
	}
	got := AliasSpecialRegisters(text)
	want := "cdp p0, #0x0, c13, c0, c0, #0x0"
	if got != want {
		t.Errorf("decodeCDPOrMCR(%#x) = %q, want %q", word, got, want)
	}

	// LDC with CRd=14: same guard against the alias pass.
	ldcWord := uint32(1<<20 | 14<<12) // L=1 (LDC), crd=14
	ldcText, ok := decodeLDCSTC(ldcWord, "", false)
	if !ok {
		t.Fatalf("decodeLDCSTC(%#x) not recognized", ldcWord)
	}
	gotLDC := AliasSpecialRegisters(ldcText)
	if !strings.Contains(gotLDC, "c14") || strings.Contains(gotLDC, "clr") {
		t.Errorf("decodeLDCSTC(%#x) = %q, want a c14 operand untouched by alias rewriting", ldcWord, gotLDC)
	}
}

func TestDecodeARMUnpredictableMULRejected(t *testing.T) {
	// MUL with Rn (bits15:12) non-zero is architecturally unpredictable;
	// this decoder rejects it rather than rendering a should-be-zero field.
	word := uint32(0xE0011291) // mul r1, r1, r2, with the should-be-zero Rn field forced to r1
	if _, ok := DecodeARM(word, V5TE); ok {
		t.Errorf("DecodeARM(%#x) = recognized, want rejected (MUL with Rn != 0)", word)
	}
}
