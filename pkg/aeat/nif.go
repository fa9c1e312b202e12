package aeat

import (
	"fmt"
	"strings"
)

// Letras de control del NIF/NIE: el resto de dividir los 8 dígitos entre 23
// indexa esta tabla (Orden del Ministerio del Interior de 3 de abril de 1990).
const letrasNIF = "TRWAGMYFPDXBNJZSQVHLCKE"

// ValidarNIF valida el dígito/letra de control de un NIF, NIE o CIF español.
// Acepta el identificador con o sin guiones y en cualquier capitalización.
// Devuelve nil si es válido; un error descriptivo en caso contrario.
func ValidarNIF(nif string) error {
	id := normalizarID(nif)
	if len(id) != 9 {
		return fmt.Errorf("aeat: el NIF debe tener 9 caracteres, se recibieron %d", len(id))
	}
	switch {
	case esDigito(id[0]):
		return validarDNI(id)
	case id[0] == 'X' || id[0] == 'Y' || id[0] == 'Z':
		return validarNIE(id)
	default:
		return validarCIF(id)
	}
}

// validarDNI: 8 dígitos + letra de control.
func validarDNI(id string) error {
	var num int
	for i := 0; i < 8; i++ {
		if !esDigito(id[i]) {
			return fmt.Errorf("aeat: DNI inválido: se esperaban 8 dígitos")
		}
		num = num*10 + int(id[i]-'0')
	}
	if esperada := letrasNIF[num%23]; id[8] != esperada {
		return fmt.Errorf("aeat: letra de control del DNI inválida: esperada %c, recibida %c", esperada, id[8])
	}
	return nil
}

// validarNIE: X/Y/Z + 7 dígitos + letra. La inicial se sustituye por 0/1/2.
func validarNIE(id string) error {
	num := int(id[0] - 'X')
	for i := 1; i < 8; i++ {
		if !esDigito(id[i]) {
			return fmt.Errorf("aeat: NIE inválido: se esperaban 7 dígitos tras la letra inicial")
		}
		num = num*10 + int(id[i]-'0')
	}
	if esperada := letrasNIF[num%23]; id[8] != esperada {
		return fmt.Errorf("aeat: letra de control del NIE inválida: esperada %c, recibida %c", esperada, id[8])
	}
	return nil
}

// validarCIF: letra de entidad + 7 dígitos + control (dígito o letra según la
// letra de entidad, RD 1065/2007). Suma: posiciones pares tal cual, impares
// duplicadas con reducción de decenas.
func validarCIF(id string) error {
	letra := id[0]
	if !strings.ContainsRune("ABCDEFGHJKLMNPQRSUVW", rune(letra)) {
		return fmt.Errorf("aeat: letra de entidad del CIF desconocida: %c", letra)
	}
	var suma int
	for i := 1; i <= 7; i++ {
		if !esDigito(id[i]) {
			return fmt.Errorf("aeat: CIF inválido: se esperaban 7 dígitos centrales")
		}
		d := int(id[i] - '0')
		if i%2 == 1 { // posiciones impares (1ª, 3ª, 5ª, 7ª) se duplican
			d *= 2
			if d > 9 {
				d = d/10 + d%10
			}
		}
		suma += d
	}
	control := (10 - suma%10) % 10
	digitoOK := id[8] == byte('0'+control)
	letraOK := id[8] == "JABCDEFGHI"[control]
	switch {
	case strings.ContainsRune("PQRSW", rune(letra)) || id[1] == '0' && id[2] == '0':
		// Entidades cuyo control es siempre letra (organismos públicos, etc.)
		if !letraOK {
			return fmt.Errorf("aeat: letra de control del CIF inválida")
		}
	case strings.ContainsRune("ABEH", rune(letra)):
		// Control siempre numérico
		if !digitoOK {
			return fmt.Errorf("aeat: dígito de control del CIF inválido")
		}
	default:
		if !digitoOK && !letraOK {
			return fmt.Errorf("aeat: control del CIF inválido")
		}
	}
	return nil
}

func normalizarID(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r == '-' || r == '.' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func esDigito(b byte) bool { return b >= '0' && b <= '9' }
