// Package statistics aggregates completed and partial fills into
// summary statistics. It never mutates the trade records it reads,
// and it computes no portfolio mark-to-market; that is the caller's
// concern.
package statistics

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/tradekit/backtester/orders"
)

// CalculateResults builds a report over every record with executed
// quantity above zero, preserving submission order.
func CalculateResults(records []*orders.TradeRecord) *Report {
	r := &Report{
		AverageFillPrice: decimal.Zero,
		TotalNotional:    decimal.Zero,
		TotalFees:        decimal.Zero,
	}
	avgSum := decimal.Zero
	for _, rec := range records {
		if rec == nil || rec.ExecutedQty <= 0 {
			continue
		}
		detail := TradeDetail{
			OrderID:     rec.Order.ID,
			Instrument:  rec.Order.Instrument,
			Side:        rec.Order.Side,
			Quantity:    rec.Order.Quantity,
			ExecutedQty: rec.ExecutedQty,
			AvgPrice:    rec.AvgPrice,
			Notional:    decimal.NewFromFloat(rec.AvgPrice).Mul(decimal.NewFromFloat(rec.ExecutedQty)),
			Status:      rec.Status,
			Fills:       append([]orders.Fill(nil), rec.Fills...),
		}
		fees := decimal.Zero
		for i := range rec.Fills {
			fees = fees.Add(decimal.NewFromFloat(rec.Fills[i].Fee))
		}
		detail.Fees = fees

		r.Trades = append(r.Trades, detail)
		r.TotalTrades++
		r.TotalNotional = r.TotalNotional.Add(detail.Notional)
		r.TotalFees = r.TotalFees.Add(fees)
		avgSum = avgSum.Add(decimal.NewFromFloat(rec.AvgPrice))
	}
	if r.TotalTrades > 0 {
		r.AverageFillPrice = avgSum.Div(decimal.NewFromInt(int64(r.TotalTrades)))
	}
	return r
}

// Serialise returns the report as indented JSON.
func (r *Report) Serialise() (string, error) {
	out, err := json.MarshalIndent(r, "", " ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// PrintResult writes a human readable summary to w.
func (r *Report) PrintResult(w io.Writer) {
	fmt.Fprintln(w, "------------------Backtest Results----------------------------")
	fmt.Fprintf(w, "Total trades: %v\n", r.TotalTrades)
	fmt.Fprintf(w, "Average fill price: %v\n", r.AverageFillPrice)
	fmt.Fprintf(w, "Total notional: %v\n", r.TotalNotional)
	fmt.Fprintf(w, "Total fees: %v\n", r.TotalFees)
	for i := range r.Trades {
		t := &r.Trades[i]
		fmt.Fprintf(w, "%v | %v %v %v/%v @ %v | fees %v | %v\n",
			t.OrderID,
			t.Side,
			t.Instrument,
			t.ExecutedQty,
			t.Quantity,
			t.AvgPrice,
			t.Fees,
			t.Status)
	}
}
