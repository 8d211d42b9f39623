package cli

import (
	"errors"

	"github.com/alans123s/billtrackery/internal/client/client"
)

// userMessage converts a failure category into the customer-facing message.
// No raw error text ever reaches the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrNotAuthenticated):
		return "Sessão não autenticada. Faça login para continuar"
	case errors.Is(err, client.ErrInvalidCredentials):
		return "Credenciais inválidas ou sessão expirada"
	case errors.Is(err, client.ErrUnauthorized):
		return "Acesso não autorizado"
	case errors.Is(err, client.ErrRateLimited):
		return "Muitas requisições. Tente novamente em alguns minutos"
	case errors.Is(err, client.ErrServer):
		return "Erro no servidor. Tente novamente mais tarde"
	case errors.Is(err, client.ErrInvalidResponse):
		return "Resposta da API inválida"
	default:
		return "Ocorreu um erro inesperado. Tente novamente"
	}
}

// fail surfaces a command failure to the user and passes the error through
// for the caller's return value.
func fail(err error) error {
	notify(userMessage(err))
	return err
}
