package cli

import (
	"context"
	"fmt"
	"time"
)

// Status shows the current session. Token expiry is peeked from the JWT for
// display only: an expired token is not refreshed, the next call just fails.
func (a *App) Status(ctx context.Context) error {
	sess := a.auth.Session()
	if !sess.IsAuthenticated {
		notify("Sessão não autenticada. Faça login para continuar")
		return nil
	}

	printlnFn(headerStyle.Render("Sessão"))
	printlnFn(fmt.Sprintf("Usuário:   %s <%s>", sess.UserName, sess.UserEmail))
	printlnFn(fmt.Sprintf("Protocolo: %s (%s)", sess.Protocol, sess.ProtocolID))
	printlnFn(fmt.Sprintf("Parceiro:  %s", sess.PartnerID))

	if exp, ok := sess.TokenExpiresAt(); ok {
		if time.Now().After(exp) {
			printlnFn(pendingStyle.Render(fmt.Sprintf("Token expirado em %s. Faça login novamente", exp.Format("02/01/2006 15:04"))))
		} else {
			printlnFn(mutedStyle.Render(fmt.Sprintf("Token válido até %s", exp.Format("02/01/2006 15:04"))))
		}
	}
	return nil
}
