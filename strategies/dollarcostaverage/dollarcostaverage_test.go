package dollarcostaverage

import (
	"testing"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

func TestName(t *testing.T) {
	if New().Name() != Name {
		t.Error("unexpected name")
	}
}

func TestOnBar(t *testing.T) {
	s := New()
	ctx := base.Context{}
	var emitted int
	for i := 0; i < 20; i++ {
		req, err := s.OnBar(i, data.Bar{}, nil, ctx)
		if err != nil {
			t.Fatal(err)
		}
		if req == nil {
			continue
		}
		emitted++
		if req.Side != orders.Buy || req.Quantity != s.Quantity {
			t.Errorf("unexpected request %+v", req)
		}
	}
	if emitted != 4 {
		t.Errorf("expected 4 orders over 20 bars, received %v", emitted)
	}
}
