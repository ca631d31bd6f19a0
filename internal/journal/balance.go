package journal

import (
	"github.com/shopspring/decimal"

	"github.com/crania-dev/crania/internal/model"
)

// BalanceOf folds transactions into the account's signed balance on its
// normal side: (debit - credit) for debit-normal accounts, (credit - debit)
// for credit-normal ones. Voided transactions are skipped; drafts are NOT —
// report-level callers must pre-filter the transaction subset they pass in.
func BalanceOf(account model.Account, txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	debitNormal := account.Type.NormalSide() == model.SideDebit

	for _, txn := range txns {
		if txn.Status == model.StatusVoided {
			continue
		}
		for _, line := range txn.Lines {
			if line.AccountID != account.ID {
				continue
			}
			if debitNormal {
				total = total.Add(line.Debit.Sub(line.Credit))
			} else {
				total = total.Add(line.Credit.Sub(line.Debit))
			}
		}
	}
	return model.Round2(total)
}
