package utils

// Format-only checks for Brazilian tax documents: length and the
// all-same-digit reject. Full check-digit validation is intentionally
// not implemented.

func digitsOf(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidCPF reports whether the string looks like a CPF (11 digits,
// not all the same digit). Punctuation is ignored.
func IsValidCPF(cpf string) bool {
	d := digitsOf(cpf)
	return len(d) == 11 && !allSameDigit(d)
}

// IsValidCNPJ reports whether the string looks like a CNPJ (14 digits,
// not all the same digit). Punctuation is ignored.
func IsValidCNPJ(cnpj string) bool {
	d := digitsOf(cnpj)
	return len(d) == 14 && !allSameDigit(d)
}
