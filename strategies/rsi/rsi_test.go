package rsi

import (
	"testing"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

func monotonicBars(n int, step float64) []data.Bar {
	bars := make([]data.Bar, n)
	price := 100.0
	for i := range bars {
		bars[i] = data.Bar{
			Time:   1600000000000 + int64(i)*60000,
			Open:   price,
			High:   price + 1,
			Low:    price - 1,
			Close:  price + step,
			Volume: 1000,
		}
		price += step
	}
	return bars
}

func TestName(t *testing.T) {
	if New().Name() != Name {
		t.Error("unexpected name")
	}
}

func TestOnBarNotEnoughHistory(t *testing.T) {
	s := New()
	req, err := s.OnBar(0, data.Bar{Close: 100}, nil, base.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if req != nil {
		t.Error("expected no request without history")
	}
}

func TestOnBarOverboughtSells(t *testing.T) {
	s := New()
	bars := monotonicBars(30, 1) // relentless rally, RSI pegs high
	req, err := s.OnBar(29, bars[29], bars[:29], base.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Side != orders.Sell {
		t.Errorf("expected sell request, received %+v", req)
	}
}

func TestOnBarOversoldBuys(t *testing.T) {
	s := New()
	bars := monotonicBars(30, -1)
	req, err := s.OnBar(29, bars[29], bars[:29], base.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Side != orders.Buy {
		t.Errorf("expected buy request, received %+v", req)
	}
}
