package service

import (
	"context"
	"testing"

	"rsiboard/internal/model"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
)

func newAlertTestService() (*alertSettingService, *fakeAlertSettingDao, *fakeUserDao) {
	ad := newFakeAlertSettingDao()
	ud := newFakeUserDao()
	return NewAlertSettingService(ad, ud), ad, ud
}

func TestAlertSettingCreateDefaults(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	res, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:    user.Id,
		Name:      "overbought watch",
		Condition: "overbought",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.OverboughtThreshold != "70.00" {
		t.Errorf("overbought threshold should default to 70.00, got %s", res.OverboughtThreshold)
	}
	if res.OversoldThreshold != "30.00" {
		t.Errorf("oversold threshold should default to 30.00, got %s", res.OversoldThreshold)
	}
	if !res.IsEnabled {
		t.Error("is_enabled should default to true")
	}
	if !res.AppliesToAllPairs {
		t.Error("applies_to_all_pairs should default to true")
	}
	if len(res.CoinPairFilters) != 0 {
		t.Errorf("filters should default empty, got %v", res.CoinPairFilters)
	}
}

func TestAlertSettingCreateCustomRequiresThresholdAndOperator(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	cases := []model.AlertSettingCreateReq{
		{UserId: user.Id, Name: "bad", Condition: "custom"},
		{UserId: user.Id, Name: "bad", Condition: "custom", CustomThreshold: strPtr("55.00")},
		{UserId: user.Id, Name: "bad", Condition: "custom", CustomOperator: strPtr(">")},
	}
	for i, req := range cases {
		if _, err := svc.AlertSettingCreate(context.Background(), req); !errors.IsCode(err, ecode.ValidateErr) {
			t.Errorf("case %d: want ValidateErr, got %v", i, err)
		}
	}

	res, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:          user.Id,
		Name:            "good",
		Condition:       "custom",
		CustomThreshold: strPtr("55.00"),
		CustomOperator:  strPtr(">"),
	})
	if err != nil {
		t.Fatalf("create with both custom fields: %v", err)
	}
	if res.CustomThreshold != "55.00" || res.CustomOperator != ">" {
		t.Errorf("custom fields lost: %+v", res)
	}
	if res.OverboughtThreshold != "70.00" || res.OversoldThreshold != "30.00" {
		t.Errorf("custom rules keep the defaulted thresholds, got %+v", res)
	}
}

func TestAlertSettingCreateRejectsUnknownCondition(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	_, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:    user.Id,
		Name:      "bad",
		Condition: "sideways",
	})
	if !errors.IsCode(err, ecode.ValidateErr) {
		t.Errorf("want ValidateErr, got %v", err)
	}
}

func TestAlertSettingCreateUnknownUser(t *testing.T) {
	svc, _, _ := newAlertTestService()

	_, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:    7,
		Name:      "orphan",
		Condition: "oversold",
	})
	if !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("want NotFoundErr, got %v", err)
	}
}

func TestAlertSettingFiltersOnlyStoredWhenScoped(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	// filters alongside applies_to_all_pairs=true are dropped
	res, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:          user.Id,
		Name:            "global",
		Condition:       "overbought",
		CoinPairFilters: []string{"BTCUSDT"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(res.CoinPairFilters) != 0 {
		t.Errorf("filters should not be stored for a global rule, got %v", res.CoinPairFilters)
	}

	res, err = svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:            user.Id,
		Name:              "scoped",
		Condition:         "overbought",
		AppliesToAllPairs: boolPtr(false),
		CoinPairFilters:   []string{"BTCUSDT", "ETHUSDT"},
	})
	if err != nil {
		t.Fatalf("create scoped: %v", err)
	}
	if len(res.CoinPairFilters) != 2 {
		t.Errorf("scoped rule should keep its filters, got %v", res.CoinPairFilters)
	}
}

func TestAlertSettingUpdateGlobalClearsFilters(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	created, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:            user.Id,
		Name:              "scoped",
		Condition:         "oversold",
		AppliesToAllPairs: boolPtr(false),
		CoinPairFilters:   []string{"BTCUSDT"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.AlertSettingUpdate(context.Background(), model.AlertSettingUpdateReq{
		Id:                created.Id,
		AppliesToAllPairs: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !res.AppliesToAllPairs {
		t.Error("applies_to_all_pairs should be true")
	}
	if len(res.CoinPairFilters) != 0 {
		t.Errorf("widening to all pairs should clear filters, got %v", res.CoinPairFilters)
	}
}

func TestAlertSettingUpdateEmptyIsNoOp(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	created, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:    user.Id,
		Name:      "watch",
		Condition: "overbought",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.AlertSettingUpdate(context.Background(), model.AlertSettingUpdateReq{Id: created.Id})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.Name != "watch" || res.OverboughtThreshold != "70.00" {
		t.Errorf("empty update should return the current row, got %+v", res)
	}
}

func TestAlertSettingDelete(t *testing.T) {
	svc, _, ud := newAlertTestService()
	user := seedUser(ud, "alice")

	created, err := svc.AlertSettingCreate(context.Background(), model.AlertSettingCreateReq{
		UserId:    user.Id,
		Name:      "watch",
		Condition: "overbought",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.AlertSettingDelete(context.Background(), created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.AlertSettingDelete(context.Background(), created.Id); !errors.IsCode(err, ecode.NotFoundErr) {
		t.Errorf("second delete should be NotFoundErr, got %v", err)
	}
}
