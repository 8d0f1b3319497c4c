package service

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"gorm.io/datatypes"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/cache"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var _ DashboardConfigService = (*dashboardConfigService)(nil)

type DashboardConfigService interface {
	// ConfigGet returns the singleton row, seeding defaults on first read
	ConfigGet(ctx context.Context) (model.DashboardConfigRes, error)
	ConfigUpdate(ctx context.Context, req model.DashboardConfigUpdateReq) (model.DashboardConfigRes, error)
}

type dashboardConfigService struct {
	d dao.DashboardConfigDao
}

func NewDashboardConfigService(d dao.DashboardConfigDao) *dashboardConfigService {
	return &dashboardConfigService{d: d}
}

func (s *dashboardConfigService) ConfigGet(ctx context.Context) (res model.DashboardConfigRes, err error) {
	if raw, ok := cache.Get(ctx, consts.DashboardConfigKey); ok {
		if jerr := json.Unmarshal([]byte(raw), &res); jerr == nil {
			return res, nil
		}
	}

	cfg, err := s.d.ConfigGet(ctx)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "load dashboard config failed")
	}
	res = toDashboardConfigRes(cfg)
	if buf, jerr := json.Marshal(res); jerr == nil {
		cache.Set(ctx, consts.DashboardConfigKey, string(buf), time.Duration(consts.CacheExrDefaultSeconds)*time.Second)
	}
	return res, nil
}

func (s *dashboardConfigService) ConfigUpdate(ctx context.Context, req model.DashboardConfigUpdateReq) (res model.DashboardConfigRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cfg, err := s.d.ConfigGet(ctx)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "load dashboard config failed")
	}

	fields := map[string]interface{}{}
	if req.RefreshInterval != nil {
		fields["refresh_interval"] = *req.RefreshInterval
		cfg.RefreshInterval = *req.RefreshInterval
	}
	if req.DefaultRSIPeriod != nil {
		fields["default_rsi_period"] = *req.DefaultRSIPeriod
		cfg.DefaultRSIPeriod = *req.DefaultRSIPeriod
	}
	if req.MaxHistoricalRecords != nil {
		fields["max_historical_records"] = *req.MaxHistoricalRecords
		cfg.MaxHistoricalRecords = *req.MaxHistoricalRecords
	}
	if req.DisplaySettings != nil {
		if err = checkDisplaySettings(req.DisplaySettings); err != nil {
			return res, err
		}
		m := datatypes.JSONMap(req.DisplaySettings)
		fields["display_settings"] = m
		cfg.DisplaySettings = m
	}
	if req.ApiSettings != nil {
		if err = checkApiSettings(req.ApiSettings); err != nil {
			return res, err
		}
		m := datatypes.JSONMap(req.ApiSettings)
		fields["api_settings"] = m
		cfg.ApiSettings = m
	}
	if len(fields) == 0 {
		return toDashboardConfigRes(cfg), nil
	}

	if err = s.d.ConfigUpdate(ctx, cfg.Id, fields); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "update dashboard config failed")
	}
	cache.Del(ctx, consts.DashboardConfigKey)

	cfg.UpdatedAt = time.Now().UTC()
	return toDashboardConfigRes(cfg), nil
}

// checkDisplaySettings type-checks the known display keys. Unknown keys are
// stored as-is so the frontend can grow its own settings.
func checkDisplaySettings(m map[string]interface{}) error {
	for key, val := range m {
		switch key {
		case "show_volume", "show_price", "show_timestamp":
			if _, err := cast.ToBoolE(val); err != nil {
				return errors.WithCode(ecode.ValidateErr, "display_settings.%s must be a boolean", key)
			}
		case "grid_columns":
			n, err := cast.ToIntE(val)
			if err != nil || n <= 0 {
				return errors.WithCode(ecode.ValidateErr, "display_settings.grid_columns must be a positive integer")
			}
		case "theme":
			if _, err := cast.ToStringE(val); err != nil {
				return errors.WithCode(ecode.ValidateErr, "display_settings.theme must be a string")
			}
		}
	}
	return nil
}

func checkApiSettings(m map[string]interface{}) error {
	for key, val := range m {
		switch key {
		case "base_url":
			if _, err := cast.ToStringE(val); err != nil {
				return errors.WithCode(ecode.ValidateErr, "api_settings.base_url must be a string")
			}
		case "rate_limit", "timeout":
			n, err := cast.ToIntE(val)
			if err != nil || n <= 0 {
				return errors.WithCode(ecode.ValidateErr, "api_settings.%s must be a positive integer", key)
			}
		}
	}
	return nil
}

func toDashboardConfigRes(cfg entity.DashboardConfig) model.DashboardConfigRes {
	return model.DashboardConfigRes{
		Id:                   cfg.Id,
		RefreshInterval:      cfg.RefreshInterval,
		DefaultRSIPeriod:     cfg.DefaultRSIPeriod,
		MaxHistoricalRecords: cfg.MaxHistoricalRecords,
		DisplaySettings:      cfg.DisplaySettings,
		ApiSettings:          cfg.ApiSettings,
		UpdatedAt:            cfg.UpdatedAt.Format(consts.ResponseTimeLayout),
	}
}
