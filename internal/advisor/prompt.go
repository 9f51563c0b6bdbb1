package advisor

import (
	"strings"

	"github.com/dafibh/fundvision/fundvision-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultRecentTransactions is how many transactions the context block includes
const DefaultRecentTransactions = 10

// Instructions is the assistant persona appended to every context block
const Instructions = "You are FundVision AI, a professional and proactive financial assistant based in India. " +
	"Analyze the user's data to provide specific insights in Indian Rupees (₹). " +
	"If they ask for advice, use their transaction history to be relevant. " +
	"Be concise, friendly, and always add a disclaimer that you are an AI and not a substitute for certified financial planning."

// Snapshot is a read-only copy of the session data the advisor summarizes.
// Transactions are expected newest first.
type Snapshot struct {
	Accounts     []*domain.Account
	Budgets      []*domain.Budget
	Transactions []*domain.Transaction
}

// BuildContext renders the financial profile sent as the system instruction.
// Only the first limit transactions are included; a non-positive limit falls
// back to DefaultRecentTransactions.
func BuildContext(snapshot Snapshot, limit int) string {
	if limit <= 0 {
		limit = DefaultRecentTransactions
	}

	var b strings.Builder
	b.WriteString("User Financial Profile:\n")

	total := decimal.Zero
	for _, account := range snapshot.Accounts {
		total = total.Add(account.Balance)
	}
	b.WriteString("- Total Balance: ₹")
	b.WriteString(total.StringFixed(2))
	b.WriteString("\n")

	accounts := make([]string, 0, len(snapshot.Accounts))
	for _, a := range snapshot.Accounts {
		accounts = append(accounts, a.Name+" ("+string(a.Type)+"): ₹"+a.Balance.String())
	}
	b.WriteString("- Accounts: ")
	b.WriteString(strings.Join(accounts, ", "))
	b.WriteString("\n")

	budgets := make([]string, 0, len(snapshot.Budgets))
	for _, bg := range snapshot.Budgets {
		budgets = append(budgets, string(bg.Category)+": ₹"+bg.Spent.String()+"/₹"+bg.Limit.String())
	}
	b.WriteString("- Budgets Status: ")
	b.WriteString(strings.Join(budgets, ", "))
	b.WriteString("\n")

	recent := snapshot.Transactions
	if len(recent) > limit {
		recent = recent[:limit]
	}
	txs := make([]string, 0, len(recent))
	for _, t := range recent {
		txs = append(txs, t.Date.Format(domain.DateLayout)+" "+t.Description+": ₹"+t.Amount.String()+" ("+string(t.Category)+")")
	}
	b.WriteString("- Recent Transactions: ")
	b.WriteString(strings.Join(txs, ", "))
	b.WriteString("\n\nInstructions:\n")
	b.WriteString(Instructions)

	return b.String()
}
