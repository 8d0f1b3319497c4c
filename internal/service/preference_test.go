package service

import (
	"context"
	"testing"

	"rsiboard/internal/model"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
)

func newPreferenceTestService() (*preferenceService, *fakePreferenceDao, *fakeUserDao, *fakeCoinPairDao) {
	pd := newFakePreferenceDao()
	ud := newFakeUserDao()
	cpd := newFakeCoinPairDao()
	return NewPreferenceService(pd, ud, cpd), pd, ud, cpd
}

func TestPreferenceCreateDefaultsSelected(t *testing.T) {
	svc, _, ud, cpd := newPreferenceTestService()
	user := seedUser(ud, "alice")
	pair := seedPair(cpd, "BTCUSDT")

	res, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
		UserId:     user.Id,
		CoinPairId: pair.Id,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !res.IsSelected {
		t.Error("is_selected should default to true")
	}
	if res.Symbol != "BTCUSDT" {
		t.Errorf("unexpected symbol %s", res.Symbol)
	}
	if res.DisplayOrder != 0 {
		t.Errorf("display_order should default to 0, got %d", res.DisplayOrder)
	}
}

func TestPreferenceCreateChecksReferences(t *testing.T) {
	svc, _, ud, cpd := newPreferenceTestService()
	user := seedUser(ud, "alice")
	pair := seedPair(cpd, "BTCUSDT")

	if _, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
		UserId:     99,
		CoinPairId: pair.Id,
	}); !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("unknown user: want NotFoundErr, got %v", err)
	}
	if _, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
		UserId:     user.Id,
		CoinPairId: 99,
	}); !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("unknown pair: want NotFoundErr, got %v", err)
	}
}

func TestPreferenceUpdateReorders(t *testing.T) {
	svc, _, ud, cpd := newPreferenceTestService()
	user := seedUser(ud, "alice")
	pair := seedPair(cpd, "BTCUSDT")

	created, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
		UserId:     user.Id,
		CoinPairId: pair.Id,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.PreferenceUpdate(context.Background(), model.PreferenceUpdateReq{
		Id:           created.Id,
		DisplayOrder: intPtr(3),
		IsSelected:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.DisplayOrder != 3 || res.IsSelected {
		t.Errorf("update lost fields: %+v", res)
	}
}

func TestPreferenceListByUser(t *testing.T) {
	svc, pd, ud, cpd := newPreferenceTestService()
	user := seedUser(ud, "alice")
	other := seedUser(ud, "bob")
	btc := seedPair(cpd, "BTCUSDT")
	eth := seedPair(cpd, "ETHUSDT")
	pd.symbols[btc.Id] = btc.Symbol
	pd.symbols[eth.Id] = eth.Symbol

	for _, c := range []struct {
		userId int64
		pairId int64
	}{{user.Id, btc.Id}, {user.Id, eth.Id}, {other.Id, btc.Id}} {
		if _, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
			UserId:     c.userId,
			CoinPairId: c.pairId,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	res, err := svc.PreferenceGetListByUser(context.Background(), user.Id)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Preferences) != 2 {
		t.Fatalf("want 2 rows for alice, got %d", len(res.Preferences))
	}
	for _, row := range res.Preferences {
		if row.Symbol == "" {
			t.Errorf("row %d should carry its pair symbol", row.Id)
		}
	}
}

func TestPreferenceDelete(t *testing.T) {
	svc, _, ud, cpd := newPreferenceTestService()
	user := seedUser(ud, "alice")
	pair := seedPair(cpd, "BTCUSDT")

	created, err := svc.PreferenceCreate(context.Background(), model.PreferenceCreateReq{
		UserId:     user.Id,
		CoinPairId: pair.Id,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.PreferenceDelete(context.Background(), created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.PreferenceDelete(context.Background(), created.Id); !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("second delete should be NotFoundErr, got %v", err)
	}
}
