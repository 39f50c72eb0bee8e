package models

import "encoding/json"

// QueryResult is one row returned by the query_financial_data procedure.
// ResultData is type-specific: an array of objects for chart/transactions/
// accounts/categories rows, a single object for summary rows.
type QueryResult struct {
	ResultType string          `json:"result_type"`
	ResultText string          `json:"result_text"`
	ResultData json.RawMessage `json:"result_data"`
}
