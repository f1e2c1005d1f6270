package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/panel-minorista/internal/domain"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
	"github.com/jhoicas/panel-minorista/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*SaleRepo)(nil)
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
)

// SaleRepo ventas; los ítems viajan como JSONB.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := json.Marshal(nonNil(s.Items))
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO sales (id, date, customer, total, payment_method, items)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Date, s.Customer, s.Total, string(s.PaymentMethod), items,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.KindValidation, "venta duplicada: "+s.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT id, date, customer, total, payment_method, items FROM sales ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var out []entity.Sale
	for rows.Next() {
		var (
			s      entity.Sale
			method string
			items  []byte
		)
		if err := rows.Scan(&s.ID, &s.Date, &s.Customer, &s.Total, &method, &items); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.PaymentMethod = entity.PaymentMethod(method)
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PurchaseRepo compras; los ítems viajan como JSONB.
type PurchaseRepo struct {
	q Querier
}

func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	items, err := json.Marshal(nonNil(p.Items))
	if err != nil {
		return fmt.Errorf("marshal purchase items: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO purchases (id, date, supplier, total, status, items)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Date, p.Supplier, p.Total, string(p.Status), items,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.KindValidation, "compra duplicada: "+p.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) List(ctx context.Context) ([]entity.Purchase, error) {
	rows, err := r.q.Query(ctx, `SELECT id, date, supplier, total, status, items FROM purchases ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var out []entity.Purchase
	for rows.Next() {
		var (
			p      entity.Purchase
			status string
			items  []byte
		)
		if err := rows.Scan(&p.ID, &p.Date, &p.Supplier, &p.Total, &status, &items); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.Status = entity.PurchaseStatus(status)
		if err := json.Unmarshal(items, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal purchase items: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
