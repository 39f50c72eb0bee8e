package models

type LedgerSyncResult struct {
	Accounts       int `json:"accounts"`
	JournalEntries int `json:"journalEntries"`
}

type BankSyncResult struct {
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
}

type AnomalyCheckResult struct {
	AnomaliesDetected int `json:"anomaliesDetected"`
}

type SyncResult struct {
	GeneralLedger    LedgerSyncResult   `json:"generalLedger"`
	BankTransactions BankSyncResult     `json:"bankTransactions"`
	Anomalies        AnomalyCheckResult `json:"anomalies"`
}
