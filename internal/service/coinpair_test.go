package service

import (
	"context"
	"strings"
	"testing"

	"rsiboard/internal/model"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
)

func newCoinPairTestService() (*coinPairService, *fakeCoinPairDao, *fakeRSIDataDao) {
	cpd := newFakeCoinPairDao()
	rd := newFakeRSIDataDao()
	return NewCoinPairService(cpd, rd), cpd, rd
}

func TestCoinPairCreateDefaultsActive(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	res, err := svc.CoinPairCreate(context.Background(), model.CoinPairCreateReq{
		Symbol:     "BTCUSDT",
		BaseAsset:  "BTC",
		QuoteAsset: "USDT",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.IsActive {
		t.Error("is_active should default to true")
	}
	if res.Symbol != "BTCUSDT" || res.BaseAsset != "BTC" || res.QuoteAsset != "USDT" {
		t.Errorf("unexpected response %+v", res)
	}
	if res.Id == 0 {
		t.Error("id should be assigned")
	}
}

func TestCoinPairCreateExplicitInactive(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	res, err := svc.CoinPairCreate(context.Background(), model.CoinPairCreateReq{
		Symbol:     "ETHUSDT",
		BaseAsset:  "ETH",
		QuoteAsset: "USDT",
		IsActive:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.IsActive {
		t.Error("explicit is_active=false should not be overridden by the default")
	}
}

func TestCoinPairCreateDuplicateSymbol(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	req := model.CoinPairCreateReq{Symbol: "BTCUSDT", BaseAsset: "BTC", QuoteAsset: "USDT"}
	if _, err := svc.CoinPairCreate(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.CoinPairCreate(context.Background(), req)
	if !errors.IsCode(err, ecode.DuplicateErr) {
		t.Errorf("want DuplicateErr, got %v", err)
	}
}

func TestCoinPairCreateSymbolTooLong(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	_, err := svc.CoinPairCreate(context.Background(), model.CoinPairCreateReq{
		Symbol:     strings.Repeat("X", 51),
		BaseAsset:  "BTC",
		QuoteAsset: "USDT",
	})
	if !errors.IsCode(err, ecode.ValidateErr) {
		t.Errorf("want ValidateErr for 51-char symbol, got %v", err)
	}
}

func TestCoinPairUpdatePartial(t *testing.T) {
	svc, cpd, _ := newCoinPairTestService()
	pair := seedPair(cpd, "BTCUSDT")

	res, err := svc.CoinPairUpdate(context.Background(), model.CoinPairUpdateReq{
		Id:       pair.Id,
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.IsActive {
		t.Error("is_active should be updated to false")
	}
	if res.Symbol != "BTCUSDT" {
		t.Errorf("symbol should be untouched, got %s", res.Symbol)
	}
}

func TestCoinPairUpdateEmptyIsNoOp(t *testing.T) {
	svc, cpd, _ := newCoinPairTestService()
	pair := seedPair(cpd, "BTCUSDT")

	res, err := svc.CoinPairUpdate(context.Background(), model.CoinPairUpdateReq{Id: pair.Id})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Symbol != "BTCUSDT" || !res.IsActive {
		t.Errorf("empty update should return the current row, got %+v", res)
	}
}

func TestCoinPairUpdateNotFound(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	_, err := svc.CoinPairUpdate(context.Background(), model.CoinPairUpdateReq{
		Id:     99,
		Symbol: strPtr("SOLUSDT"),
	})
	if !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("want NotFoundErr, got %v", err)
	}
}

func TestCoinPairGetBySymbolNotFound(t *testing.T) {
	svc, _, _ := newCoinPairTestService()

	_, err := svc.CoinPairGetBySymbol(context.Background(), "NOPEUSDT")
	if !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("want NotFoundErr, got %v", err)
	}
}

func TestCoinPairGetListCountsTotal(t *testing.T) {
	svc, cpd, _ := newCoinPairTestService()
	seedPair(cpd, "BTCUSDT")
	seedPair(cpd, "ETHUSDT")

	res, err := svc.CoinPairGetList(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 2 || len(res.CoinPairs) != 2 {
		t.Errorf("want 2 pairs, got total=%d len=%d", res.Total, len(res.CoinPairs))
	}
}
