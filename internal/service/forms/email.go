package forms

import (
	"regexp"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// EmailExample пример корректного адреса для сообщения об ошибке
const EmailExample = "name@example.com"

// local-part@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail проверяет адрес по шаблону local-part@domain.tld
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// validityWhileTyping совпадение сразу дает valid, иначе unknown (ошибку не показываем до потери фокуса)
func validityWhileTyping(email string) domain.EmailValidity {
	if IsValidEmail(email) {
		return domain.EmailValid
	}
	return domain.EmailUnknown
}

// validityOnBlur пустое значение остается unknown, несовпадение становится invalid
func validityOnBlur(email string) domain.EmailValidity {
	switch {
	case email == "":
		return domain.EmailUnknown
	case IsValidEmail(email):
		return domain.EmailValid
	default:
		return domain.EmailInvalid
	}
}
