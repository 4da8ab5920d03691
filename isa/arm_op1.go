package isa

import "fmt"

// decodeDPImmediateAndMSR handles op1==1: data-processing with an
// 8-bit-rotated immediate operand, and the MSR-immediate form which
// shares the same reserved "compare with S==0" encoding space as the
// register MSR/MRS forms in op1==0.
func decodeDPImmediateAndMSR(word uint32, suffix string) (string, bool) {
	if Slice(word, 23, 2) == 0b10 && !bit(word, 20) && bit(word, 21) {
		return decodeMSRImmediate(word, suffix)
	}

	opcode := Slice(word, 21, 4)
	setFlags := bit(word, 20)
	rd := Slice(word, 12, 4)
	rn := Slice(word, 16, 4)
	imm8 := Slice(word, 0, 8)
	rotate := Slice(word, 8, 4)

	_, operand2 := DataProcessingImmediate(imm8, rotate)
	return renderDataProcessing(opcode, setFlags, suffix, rd, rn, operand2), true
}

// decodeMSRImmediate handles MSR <psr>_<fields>, #<immediate>.
func decodeMSRImmediate(word uint32, suffix string) (string, bool) {
	spsr := bit(word, 22)
	psrName := "CPSR"
	if spsr {
		psrName = "SPSR"
	}
	fieldMask := Slice(word, 16, 4)
	imm8 := Slice(word, 0, 8)
	rotate := Slice(word, 8, 4)
	_, operand := DataProcessingImmediate(imm8, rotate)

	return fmt.Sprintf("msr%s %s_%s, %s", suffix, psrName, psrFieldSuffix(fieldMask), operand), true
}
