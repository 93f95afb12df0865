package utils

// IsValidCNPJ verifica os dígitos verificadores de um CNPJ.
// Espera uma string de exatamente 14 dígitos (sem máscara).
func IsValidCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	// Sequências repetidas (ex: "00000000000000") passam no cálculo
	// mas não são CNPJs reais.
	if allDigitsEqual(cnpj) {
		return false
	}

	weights1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i := 0; i < 12; i++ {
		if cnpj[i] < '0' || cnpj[i] > '9' {
			return false
		}
		sum += int(cnpj[i]-'0') * weights1[i]
	}
	digit1 := 0
	if r := sum % 11; r >= 2 {
		digit1 = 11 - r
	}
	if int(cnpj[12]-'0') != digit1 {
		return false
	}

	weights2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum = 0
	for i := 0; i < 13; i++ {
		sum += int(cnpj[i]-'0') * weights2[i]
	}
	digit2 := 0
	if r := sum % 11; r >= 2 {
		digit2 = 11 - r
	}
	return int(cnpj[13]-'0') == digit2
}

func allDigitsEqual(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
