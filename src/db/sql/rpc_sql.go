package sql

import (
	"context"

	"finsync-server/src/models"
)

// The procedures below live in the database; this layer only invokes them.

func (s *Store) DetectAnomalies(ctx context.Context) ([]models.Anomaly, error) {
	query := `SELECT type, description, severity, amount FROM detect_financial_anomalies()`

	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anomalies []models.Anomaly
	for rows.Next() {
		var a models.Anomaly
		if err := rows.Scan(&a.Type, &a.Description, &a.Severity, &a.Amount); err != nil {
			return nil, err
		}
		anomalies = append(anomalies, a)
	}

	return anomalies, rows.Err()
}

func (s *Store) RefreshMonthlySummary(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `SELECT generate_monthly_pl_view()`)
	return err
}

func (s *Store) QueryFinancialData(ctx context.Context, text string) ([]models.QueryResult, error) {
	query := `SELECT result_type, result_text, result_data FROM query_financial_data($1)`

	rows, err := s.Pool.Query(ctx, query, text)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.QueryResult
	for rows.Next() {
		var r models.QueryResult
		var data []byte
		if err := rows.Scan(&r.ResultType, &r.ResultText, &data); err != nil {
			return nil, err
		}
		r.ResultData = data
		results = append(results, r)
	}

	return results, rows.Err()
}
