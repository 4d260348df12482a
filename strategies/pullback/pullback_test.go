package pullback

import (
	"testing"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

func flatBars(n int, price float64) []data.Bar {
	bars := make([]data.Bar, n)
	for i := range bars {
		bars[i] = data.Bar{
			Time:   1600000000000 + int64(i)*60000,
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}
	return bars
}

func TestName(t *testing.T) {
	if New().Name() != Name {
		t.Error("unexpected name")
	}
}

func TestOnBarEntersOnPullback(t *testing.T) {
	s := New()
	ctx := base.Context{}
	history := flatBars(s.Lookback, 100)

	// no entry while price holds near the recent high
	req, err := s.OnBar(s.Lookback, data.Bar{Close: 99, High: 99, Low: 99}, history, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req != nil {
		t.Errorf("expected no request on a 1%% dip, received %+v", req)
	}

	// 4% below the lookback high trips the threshold
	req, err = s.OnBar(s.Lookback, data.Bar{Close: 96, High: 96, Low: 96}, history, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Side != orders.Buy {
		t.Fatalf("expected buy request, received %+v", req)
	}
	if _, open := ctx[ctxEntryPrice]; !open {
		t.Error("expected position state in context")
	}
}

func TestOnBarExitsAtTarget(t *testing.T) {
	s := New()
	ctx := base.Context{}
	history := flatBars(s.Lookback, 100)
	if req, _ := s.OnBar(s.Lookback, data.Bar{Close: 96, High: 96, Low: 96}, history, ctx); req == nil {
		t.Fatal("expected entry")
	}

	// drifting sideways: position stays open
	req, err := s.OnBar(s.Lookback+1, data.Bar{Close: 97, High: 98, Low: 96}, history, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req != nil {
		t.Errorf("expected no exit, received %+v", req)
	}

	// target is 96 * 1.15 = 110.4
	req, err = s.OnBar(s.Lookback+2, data.Bar{Close: 111, High: 112, Low: 105}, history, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Side != orders.Sell {
		t.Fatalf("expected sell at target, received %+v", req)
	}
	if _, open := ctx[ctxEntryPrice]; open {
		t.Error("expected position state cleared")
	}
}

func TestOnBarExitsAtStop(t *testing.T) {
	s := New()
	ctx := base.Context{}
	history := flatBars(s.Lookback, 100)
	if req, _ := s.OnBar(s.Lookback, data.Bar{Close: 96, High: 96, Low: 96}, history, ctx); req == nil {
		t.Fatal("expected entry")
	}

	// stop is 96 * 0.95 = 91.2
	req, err := s.OnBar(s.Lookback+1, data.Bar{Close: 90, High: 95, Low: 89}, history, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Side != orders.Sell {
		t.Fatalf("expected sell at stop, received %+v", req)
	}
}
