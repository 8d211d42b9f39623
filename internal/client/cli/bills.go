package cli

import (
	"context"
)

// Bills fetches and shows the bill history of one installation, selected by
// the index printed by sites, by site id, or by id/contract. When no listing
// was done yet the sites are fetched first.
func (a *App) Bills(ctx context.Context, arg string) error {
	if len(a.sites) == 0 {
		sites, err := a.billing.Sites(ctx)
		if err != nil {
			return fail(err)
		}
		a.sites = sites
	}

	site, err := a.resolveSite(arg)
	if err != nil {
		notify("Instalação não encontrada. Use 'sites' e informe o número da lista")
		return err
	}

	bills, err := a.billing.Bills(ctx, site.ID)
	if err != nil {
		return fail(err)
	}

	a.selected = site
	a.bills = bills

	if len(bills) == 0 {
		notify("Nenhuma conta encontrada para esta instalação")
		return nil
	}
	printlnFn(renderBills(bills, *site))
	return nil
}
