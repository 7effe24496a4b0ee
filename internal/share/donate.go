package share

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"timeworth/internal/locale"
)

// SuggestedAmounts are the preset donation buttons, in won.
var SuggestedAmounts = []int64{1000, 3000, 5000}

// DefaultAmount is preselected on the donate page.
const DefaultAmount int64 = 3000

// Donation describes the bank transfer target. It is display-only; nothing
// is charged or stored.
type Donation struct {
	Bank    string
	Holder  string
	Account string
}

// AccountLine renders "(bank) account (holder)".
func (d Donation) AccountLine() string {
	return fmt.Sprintf("(%s) %s (%s)", d.Bank, d.Account, d.Holder)
}

// Memo is the suggested transfer memo for amount.
func (d Donation) Memo(amount int64) string {
	return fmt.Sprintf("%s 후원 %s / 메모: %s", ShareTitle, Amount(amount), ShareTitle)
}

// Amount renders a donation amount in won.
func Amount(amount int64) string {
	return locale.Won(decimal.NewFromInt(amount))
}

// SelectAmount returns amount when it is one of the presets and
// DefaultAmount otherwise.
func SelectAmount(amount int64) int64 {
	if slices.Contains(SuggestedAmounts, amount) {
		return amount
	}
	return DefaultAmount
}

// CopyAccount copies the account number for pasting into a bank app.
func (s *Service) CopyAccount(ctx context.Context, d Donation) Notice {
	return s.Copy(ctx, d.Account, MsgAcctCopied, MsgAcctFailed)
}

// CopyMemo copies the transfer memo for amount.
func (s *Service) CopyMemo(ctx context.Context, d Donation, amount int64) Notice {
	return s.Copy(ctx, d.Memo(amount), MsgMemoCopied, MsgMemoFailed)
}
