package strategies

import (
	"errors"
	"testing"

	"github.com/tradekit/backtester/data"
	"github.com/tradekit/backtester/orders"
	"github.com/tradekit/backtester/strategies/base"
)

func TestGetStrategies(t *testing.T) {
	t.Parallel()
	if resp := GetStrategies(); len(resp) < 3 {
		t.Error("expected at least 3 strategies to be loaded")
	}
}

func TestLoadStrategyByName(t *testing.T) {
	t.Parallel()
	_, err := LoadStrategyByName("nope")
	if !errors.Is(err, ErrStrategyNotFound) {
		t.Errorf("expected %v, received %v", ErrStrategyNotFound, err)
	}

	h, err := LoadStrategyByName("RSI")
	if err != nil {
		t.Fatal(err)
	}
	if h.Name() != "rsi" {
		t.Errorf("expected rsi, received %v", h.Name())
	}
}

func TestNewFuncHandler(t *testing.T) {
	t.Parallel()
	h := NewFuncHandler("closure", func(index int, _ data.Bar, _ []data.Bar, ctx base.Context) (*orders.Request, error) {
		ctx["calls"] = index
		if index == 1 {
			return &orders.Request{Side: orders.Buy, Quantity: 2}, nil
		}
		return nil, nil
	})
	if h.Name() != "closure" {
		t.Error("unexpected name")
	}
	ctx := base.Context{}
	req, err := h.OnBar(0, data.Bar{}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req != nil {
		t.Error("expected nil request")
	}
	req, err = h.OnBar(1, data.Bar{}, nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if req == nil || req.Quantity != 2 {
		t.Errorf("unexpected request %+v", req)
	}
	if ctx["calls"] != 1 {
		t.Error("context state not carried")
	}
}
