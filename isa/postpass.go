package isa

import "strings"

// specialRegisterAliases maps the two-digit suffix following an 'r' to
// its conventional alias.
var specialRegisterAliases = map[string]string{
	"13": "sp",
	"14": "lr",
	"15": "pc",
}

// AliasSpecialRegisters rewrites every occurrence of the register names
// r13, r14, r15 in s to their conventional aliases sp, lr, pc. It is a
// whole-string post-pass, applied once by the public facade after an
// instruction has been fully rendered.
//
// The function is idempotent: none of sp/lr/pc contain an 'r' followed by
// two digits, so a second pass over the output is a no-op.
func AliasSpecialRegisters(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == 'r' && i+2 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) {
			if alias, ok := specialRegisterAliases[s[i+1:i+3]]; ok {
				b.WriteString(alias)
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
