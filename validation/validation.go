// Package validation holds the pure input validators used by the route
// handlers. Every write operation validates fully before touching storage.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// AllowedEmailDomains is the fixed allow-list for registration.
var AllowedEmailDomains = []string{
	"gmail.com",
	"hotmail.com",
	"outlook.com",
	"yahoo.com",
	"mail.com",
	"protonmail.com",
	"uol.com.br",
	"bol.com.br",
	"ig.com.br",
}

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nameRe   = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s']+$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// Email checks format and domain allow-list and returns the lower-cased
// address.
func Email(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("Email é obrigatório")
	}
	if !emailRe.MatchString(email) {
		return "", errors.New("Email inválido. Use formato: seu@email.com")
	}
	domain := strings.ToLower(email[strings.LastIndex(email, "@")+1:])
	for _, d := range AllowedEmailDomains {
		if domain == d {
			return strings.ToLower(email), nil
		}
	}
	return "", fmt.Errorf("Email deve ser de um dos domínios permitidos: %s",
		strings.Join(AllowedEmailDomains, ", "))
}

const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Password enforces length 8-100 with at least one uppercase, lowercase,
// digit and special character.
func Password(senha string) error {
	if senha == "" {
		return errors.New("Senha é obrigatória")
	}
	if len(senha) < 8 {
		return errors.New("Senha deve ter pelo menos 8 caracteres")
	}
	if len(senha) > 100 {
		return errors.New("Senha não pode ter mais de 100 caracteres")
	}
	var upper, lower, digit, special bool
	for _, r := range senha {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	if !upper {
		return errors.New("Senha deve conter pelo menos 1 letra maiúscula (A-Z)")
	}
	if !lower {
		return errors.New("Senha deve conter pelo menos 1 letra minúscula (a-z)")
	}
	if !digit {
		return errors.New("Senha deve conter pelo menos 1 número (0-9)")
	}
	if !special {
		return errors.New("Senha deve conter pelo menos 1 caractere especial (!@#$%^&*)")
	}
	return nil
}

// Name trims and checks length 3-100 and the letter/space/apostrophe charset.
func Name(nome string) (string, error) {
	clean := strings.TrimSpace(nome)
	if clean == "" {
		return "", errors.New("Nome é obrigatório")
	}
	if len([]rune(clean)) < 3 {
		return "", errors.New("Nome deve ter pelo menos 3 caracteres")
	}
	if len([]rune(clean)) > 100 {
		return "", errors.New("Nome não pode ter mais de 100 caracteres")
	}
	if !nameRe.MatchString(clean) {
		return "", errors.New("Nome pode conter apenas letras e espaços")
	}
	return clean, nil
}

// Card does a basic sanity check on simulated card fields. Nothing is ever
// charged with these.
func Card(number string, month, year int, cvv string) error {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) != 16 || !digitsRe.MatchString(number) {
		return errors.New("Número de cartão inválido")
	}
	if month < 1 || month > 12 {
		return errors.New("Mês inválido")
	}
	currentYear := time.Now().Year()
	if year < currentYear || year > currentYear+20 {
		return errors.New("Ano de expiração inválido")
	}
	if !cvvRe.MatchString(cvv) {
		return errors.New("CVV inválido")
	}
	return nil
}

// Quantity bounds cart quantities to [1, 99].
func Quantity(qtd int) error {
	if qtd < 1 {
		return errors.New("Quantidade deve ser no mínimo 1")
	}
	if qtd > 99 {
		return errors.New("Quantidade máxima é 99")
	}
	return nil
}

// Message trims and checks contact-message length 10-1000.
func Message(mensagem string) (string, error) {
	msg := strings.TrimSpace(mensagem)
	if msg == "" {
		return "", errors.New("Mensagem é obrigatória")
	}
	if len([]rune(msg)) < 10 {
		return "", errors.New("Mensagem deve ter pelo menos 10 caracteres")
	}
	if len([]rune(msg)) > 1000 {
		return "", errors.New("Mensagem não pode ter mais de 1000 caracteres")
	}
	return msg, nil
}
