package quickbooks

// Shapes follow the QuickBooks Online v3 query API.

type Account struct {
	ID                 string  `json:"Id"`
	Name               string  `json:"Name"`
	AccountType        string  `json:"AccountType"`
	AccountSubType     string  `json:"AccountSubType"`
	FullyQualifiedName string  `json:"FullyQualifiedName"`
	Active             bool    `json:"Active"`
	CurrentBalance     float64 `json:"CurrentBalance"`
}

type JournalEntry struct {
	ID          string `json:"Id"`
	TxnDate     string `json:"TxnDate"`
	DocNumber   string `json:"DocNumber"`
	PrivateNote string `json:"PrivateNote"`
	Line        []Line `json:"Line"`
}

type Line struct {
	ID                     string     `json:"Id"`
	Description            string     `json:"Description"`
	Amount                 float64    `json:"Amount"`
	JournalEntryLineDetail LineDetail `json:"JournalEntryLineDetail"`
}

type LineDetail struct {
	PostingType string `json:"PostingType"`
	AccountRef  Ref    `json:"AccountRef"`
}

type Ref struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}
