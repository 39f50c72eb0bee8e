package sql

import (
	"context"

	"github.com/plaid/plaid-go/v41/plaid"
)

func (s *Store) UpsertBankAccounts(ctx context.Context, accounts []plaid.AccountBase) error {
	for _, acc := range accounts {
		query := `
			INSERT INTO plaid_accounts (id, name, mask, official_name, type, subtype, current_balance, available_balance, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE SET
				name = $2,
				mask = $3,
				official_name = $4,
				type = $5,
				subtype = $6,
				current_balance = $7,
				available_balance = $8,
				created_at = NOW(),
				updated_at = NOW()
		`

		balances := acc.GetBalances()

		_, err := s.Pool.Exec(ctx, query,
			acc.GetAccountId(),
			acc.GetName(),
			acc.GetMask(),
			acc.GetOfficialName(),
			string(acc.GetType()),
			string(acc.GetSubtype()),
			balances.GetCurrent(),
			balances.GetAvailable(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) UpsertBankTransactions(ctx context.Context, transactions []plaid.Transaction) error {
	for _, txn := range transactions {
		query := `
			INSERT INTO plaid_transactions (id, account_id, amount, date, name, merchant_name, payment_channel, pending, category, category_id, personal_finance_category, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			ON CONFLICT (id) DO UPDATE SET
				account_id = $2,
				amount = $3,
				date = $4,
				name = $5,
				merchant_name = $6,
				payment_channel = $7,
				pending = $8,
				category = $9,
				category_id = $10,
				personal_finance_category = $11,
				created_at = NOW(),
				updated_at = NOW()
		`

		pfc := txn.GetPersonalFinanceCategory()

		_, err := s.Pool.Exec(ctx, query,
			txn.GetTransactionId(),
			txn.GetAccountId(),
			txn.GetAmount(),
			txn.GetDate(),
			txn.GetName(),
			txn.GetMerchantName(),
			txn.GetPaymentChannel(),
			txn.GetPending(),
			txn.GetCategory(),
			txn.GetCategoryId(),
			pfc.GetPrimary(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
