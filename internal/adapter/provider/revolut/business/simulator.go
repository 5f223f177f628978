package business

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"marketplace-integrations/internal/adapter/provider"

	"github.com/shopspring/decimal"
)

func (a *Adapter) simulate(req provider.Request) (int, any) {
	switch {
	case req.Method == http.MethodPost && req.Path == "/pay":
		now := a.now().UTC()
		return http.StatusOK, payResponse{
			ID:        fmt.Sprintf("sim_pay_%d", now.UnixNano()),
			State:     "pending",
			CreatedAt: now,
		}

	case req.Method == http.MethodGet && req.Path == "/transactions":
		txs := simTransactions(a.now().UTC())
		if n, err := strconv.Atoi(req.Query.Get("count")); err == nil && n >= 0 && n < len(txs) {
			txs = txs[:n]
		}
		return http.StatusOK, txs
	}
	return http.StatusNotFound, map[string]string{"message": "not found"}
}

func simTransactions(now time.Time) []transaction {
	out := make([]transaction, 0, 3)
	for i, amount := range []string{"-120.00", "-45.50", "-980.25"} {
		out = append(out, transaction{
			ID:        fmt.Sprintf("sim_tx_%d", i+1),
			Type:      "transfer",
			State:     "completed",
			Reference: fmt.Sprintf("SIM-PAYOUT-%d", i+1),
			CreatedAt: now.Add(-time.Duration(i+1) * 24 * time.Hour),
			Legs: []leg{{
				Amount:       decimal.RequireFromString(amount),
				Currency:     "EUR",
				Description:  "Simulated seller payout",
				Counterparty: &counterparty{Name: fmt.Sprintf("Seller %d", i+1)},
			}},
		})
	}
	return out
}
