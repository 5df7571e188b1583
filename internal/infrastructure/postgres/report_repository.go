package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hospital-pos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesSummary agrega el total de ventas, monto total y conteo por estado.
// Las ventas canceladas no suman al monto.
func (r *ReportRepo) SalesSummary() (*repository.SalesSummary, error) {
	summary := &repository.SalesSummary{
		TotalAmount: decimal.Zero,
		ByStatus:    map[string]int{},
	}

	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales GROUP BY status`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var amount decimal.Decimal
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		summary.ByStatus[status] = count
		summary.TotalSales += count
		if status != "CANCELLED" {
			summary.TotalAmount = summary.TotalAmount.Add(amount)
		}
	}
	return summary, rows.Err()
}
