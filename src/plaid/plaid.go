package plaid

import (
	"context"
	"fmt"

	"github.com/plaid/plaid-go/v41/plaid"
)

func NewPlaidClient(clientID, secret, env string) (*plaid.APIClient, error) {
	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", clientID)
	configuration.AddDefaultHeader("PLAID-SECRET", secret)

	switch env {
	case "sandbox":
		configuration.UseEnvironment(plaid.Sandbox)
	case "production":
		configuration.UseEnvironment(plaid.Production)
	default:
		return nil, fmt.Errorf("invalid Plaid environment: %s", env)
	}

	return plaid.NewAPIClient(configuration), nil
}

// BankAPI wraps the generated Plaid client behind plain method calls so sync
// code can take an interface.
type BankAPI struct {
	client *plaid.APIClient
}

func NewBankAPI(client *plaid.APIClient) *BankAPI {
	return &BankAPI{client: client}
}

func (b *BankAPI) GetAccounts(ctx context.Context, accessToken string) ([]plaid.AccountBase, error) {
	request := plaid.NewAccountsGetRequest(accessToken)
	resp, _, err := b.client.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, err
	}
	return resp.GetAccounts(), nil
}

func (b *BankAPI) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]plaid.Transaction, error) {
	request := plaid.NewTransactionsGetRequest(accessToken, startDate, endDate)
	options := plaid.NewTransactionsGetRequestOptions()
	options.SetIncludePersonalFinanceCategory(true)
	request.SetOptions(*options)

	resp, _, err := b.client.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
	if err != nil {
		return nil, err
	}
	return resp.GetTransactions(), nil
}
