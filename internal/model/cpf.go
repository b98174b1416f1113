package model

// ValidCPF reports whether s is a valid Brazilian CPF. Both the masked
// (000.000.000-00) and bare 11-digit forms are accepted. CPFs made of a
// single repeated digit pass the check-digit algorithm but are not issued,
// so they are rejected.
func ValidCPF(s string) bool {
	digits := make([]int, 0, 11)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
			// mask separators
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	return cpfCheckDigit(digits, 9) == digits[9] && cpfCheckDigit(digits, 10) == digits[10]
}

// cpfCheckDigit computes the verification digit over the first n digits,
// weighted n+1 down to 2.
func cpfCheckDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
