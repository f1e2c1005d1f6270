package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-minorista/internal/application/ports"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

// Snapshot los tres listados obtenidos en una misma consulta.
type Snapshot struct {
	Products  []entity.Product
	Sales     []entity.Sale
	Purchases []entity.Purchase
}

// Fetch pide productos, ventas y compras en paralelo. Falla si falla cualquiera.
func Fetch(ctx context.Context, client ports.APIClient) (*Snapshot, error) {
	type productsResult struct {
		items []entity.Product
		err   error
	}
	type salesResult struct {
		items []entity.Sale
		err   error
	}
	type purchasesResult struct {
		items []entity.Purchase
		err   error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)
	purchasesCh := make(chan purchasesResult, 1)

	go func() {
		res, err := client.GetProducts(ctx)
		if err != nil {
			productsCh <- productsResult{err: err}
			return
		}
		productsCh <- productsResult{items: res.Data}
	}()
	go func() {
		res, err := client.GetSales(ctx)
		if err != nil {
			salesCh <- salesResult{err: err}
			return
		}
		salesCh <- salesResult{items: res.Data}
	}()
	go func() {
		res, err := client.GetPurchases(ctx)
		if err != nil {
			purchasesCh <- purchasesResult{err: err}
			return
		}
		purchasesCh <- purchasesResult{items: res.Data}
	}()

	products := <-productsCh
	sales := <-salesCh
	purchases := <-purchasesCh

	if products.err != nil {
		return nil, fmt.Errorf("productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("compras: %w", purchases.err)
	}
	return &Snapshot{Products: products.items, Sales: sales.items, Purchases: purchases.items}, nil
}
