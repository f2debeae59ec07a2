package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "goshop/internal/errors"
)

// validate é a instância compartilhada; o validator mantém cache interno de
// reflexão por struct, então uma única instância serve a aplicação inteira.
var validate = validator.New()

// Struct valida um payload de entrada usando as tags `validate` e traduz as
// falhas para o nosso ValidationError (400), com uma mensagem por campo.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Erro de uso da lib (tipo inválido), não de entrada do usuário.
		return apperror.NewInternalError("Falha inesperada na validação do payload.", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperror.NewValidationError(strings.Join(msgs, "; "))
}

// fieldMessage gera uma mensagem legível para a falha de um campo.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo %s é obrigatório", field)
	case "email":
		return fmt.Sprintf("o campo %s deve ser um email válido", field)
	case "min":
		return fmt.Sprintf("o campo %s deve ter no mínimo %s caracteres", field, fe.Param())
	case "gt":
		return fmt.Sprintf("o campo %s deve ser maior que %s", field, fe.Param())
	default:
		return fmt.Sprintf("o campo %s é inválido (%s)", field, fe.Tag())
	}
}
