package service

import (
	"context"
	"database/sql"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var (
	defaultOverbought = decimal.RequireFromString(consts.DefaultOverboughtThreshold)
	defaultOversold   = decimal.RequireFromString(consts.DefaultOversoldThreshold)

	emptyFilters = datatypes.JSON([]byte("[]"))
)

var _ AlertSettingService = (*alertSettingService)(nil)

type AlertSettingService interface {
	AlertSettingCreate(ctx context.Context, req model.AlertSettingCreateReq) (model.AlertSettingRes, error)
	AlertSettingUpdate(ctx context.Context, req model.AlertSettingUpdateReq) (model.AlertSettingRes, error)
	AlertSettingGetListByUser(ctx context.Context, userId int64) (model.AlertSettingListRes, error)
	AlertSettingDelete(ctx context.Context, id int64) error
}

type alertSettingService struct {
	d  dao.AlertSettingDao
	ud dao.UserDao
}

func NewAlertSettingService(d dao.AlertSettingDao, ud dao.UserDao) *alertSettingService {
	return &alertSettingService{d: d, ud: ud}
}

func (s *alertSettingService) AlertSettingCreate(ctx context.Context, req model.AlertSettingCreateReq) (res model.AlertSettingRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cond := entity.AlertCondition(req.Condition)
	if !cond.Valid() {
		return res, errors.WithCode(ecode.ValidateErr, "condition must be one of overbought, oversold, custom")
	}
	if cond == entity.ConditionCustom && (req.CustomThreshold == nil || req.CustomOperator == nil) {
		return res, errors.WithCode(ecode.ValidateErr, "custom condition requires custom_threshold and custom_operator")
	}

	if _, err = s.ud.UserGetById(ctx, req.UserId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "user %d not found", req.UserId)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load user failed")
	}

	setting := entity.AlertSetting{
		UserId:              req.UserId,
		Name:                req.Name,
		Condition:           cond,
		OverboughtThreshold: defaultOverbought,
		OversoldThreshold:   defaultOversold,
		IsEnabled:           true,
		AppliesToAllPairs:   true,
		CoinPairFilters:     emptyFilters,
	}
	if req.OverboughtThreshold != nil {
		if setting.OverboughtThreshold, err = decimal.NewFromString(*req.OverboughtThreshold); err != nil {
			return res, errors.WithCode(ecode.ValidateErr, "overbought_threshold must be a decimal")
		}
	}
	if req.OversoldThreshold != nil {
		if setting.OversoldThreshold, err = decimal.NewFromString(*req.OversoldThreshold); err != nil {
			return res, errors.WithCode(ecode.ValidateErr, "oversold_threshold must be a decimal")
		}
	}
	if req.CustomThreshold != nil {
		d, derr := decimal.NewFromString(*req.CustomThreshold)
		if derr != nil {
			return res, errors.WithCode(ecode.ValidateErr, "custom_threshold must be a decimal")
		}
		setting.CustomThreshold = decimal.NewNullDecimal(d)
	}
	if req.CustomOperator != nil {
		setting.CustomOperator = sql.NullString{String: *req.CustomOperator, Valid: true}
	}
	if req.AppliesToAllPairs != nil {
		setting.AppliesToAllPairs = *req.AppliesToAllPairs
	}
	// filters are only stored when the rule targets specific pairs
	if !setting.AppliesToAllPairs && len(req.CoinPairFilters) > 0 {
		if setting.CoinPairFilters, err = marshalFilters(req.CoinPairFilters); err != nil {
			return res, err
		}
	}

	if err = s.d.AlertSettingCreate(ctx, &setting); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "create alert setting failed")
	}
	return toAlertSettingRes(setting), nil
}

func (s *alertSettingService) AlertSettingUpdate(ctx context.Context, req model.AlertSettingUpdateReq) (res model.AlertSettingRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cur, err := s.d.AlertSettingGetById(ctx, req.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "alert setting %d not found", req.Id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load alert setting failed")
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Condition != nil {
		cond := entity.AlertCondition(*req.Condition)
		if !cond.Valid() {
			return res, errors.WithCode(ecode.ValidateErr, "condition must be one of overbought, oversold, custom")
		}
		if cond == entity.ConditionCustom && req.CustomThreshold == nil && !cur.CustomThreshold.Valid {
			return res, errors.WithCode(ecode.ValidateErr, "custom condition requires custom_threshold")
		}
		fields["condition"] = cond
	}
	if req.OverboughtThreshold != nil {
		fields["overbought_threshold"] = *req.OverboughtThreshold
	}
	if req.OversoldThreshold != nil {
		fields["oversold_threshold"] = *req.OversoldThreshold
	}
	if req.CustomThreshold != nil {
		fields["custom_threshold"] = *req.CustomThreshold
	}
	if req.CustomOperator != nil {
		fields["custom_operator"] = *req.CustomOperator
	}
	if req.IsEnabled != nil {
		fields["is_enabled"] = *req.IsEnabled
	}
	if req.AppliesToAllPairs != nil {
		fields["applies_to_all_pairs"] = *req.AppliesToAllPairs
		if *req.AppliesToAllPairs {
			// a rule covering every pair keeps no stale filter list around
			fields["coin_pair_filters"] = emptyFilters
		}
	}
	if req.CoinPairFilters != nil {
		appliesToAll := cur.AppliesToAllPairs
		if req.AppliesToAllPairs != nil {
			appliesToAll = *req.AppliesToAllPairs
		}
		if !appliesToAll {
			filters, ferr := marshalFilters(req.CoinPairFilters)
			if ferr != nil {
				return res, ferr
			}
			fields["coin_pair_filters"] = filters
		}
	}
	if len(fields) == 0 {
		return toAlertSettingRes(cur), nil
	}

	if err = s.d.AlertSettingUpdate(ctx, req.Id, fields); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "update alert setting failed")
	}
	cur, err = s.d.AlertSettingGetById(ctx, req.Id)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "reload alert setting failed")
	}
	return toAlertSettingRes(cur), nil
}

func (s *alertSettingService) AlertSettingGetListByUser(ctx context.Context, userId int64) (res model.AlertSettingListRes, err error) {
	arr, err := s.d.AlertSettingGetListByUser(ctx, userId)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list alert settings failed")
	}
	res.Alerts = make([]model.AlertSettingRes, 0, len(arr))
	for _, setting := range arr {
		res.Alerts = append(res.Alerts, toAlertSettingRes(setting))
	}
	return res, nil
}

func (s *alertSettingService) AlertSettingDelete(ctx context.Context, id int64) error {
	if _, err := s.d.AlertSettingGetById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(err, ecode.NotFoundErr, "alert setting %d not found", id)
		}
		return errors.Wrap(err, ecode.DBErr, "load alert setting failed")
	}
	if err := s.d.AlertSettingDelete(ctx, id); err != nil {
		return errors.Wrap(err, ecode.DBErr, "delete alert setting failed")
	}
	return nil
}

func marshalFilters(filters []string) (datatypes.JSON, error) {
	b, err := json.Marshal(filters)
	if err != nil {
		return nil, errors.Wrap(err, ecode.ValidateErr, "coin_pair_filters must be a list of symbols")
	}
	return datatypes.JSON(b), nil
}

func toAlertSettingRes(setting entity.AlertSetting) model.AlertSettingRes {
	res := model.AlertSettingRes{
		Id:                  setting.Id,
		UserId:              setting.UserId,
		Name:                setting.Name,
		Condition:           string(setting.Condition),
		OverboughtThreshold: setting.OverboughtThreshold.StringFixed(2),
		OversoldThreshold:   setting.OversoldThreshold.StringFixed(2),
		IsEnabled:           setting.IsEnabled,
		AppliesToAllPairs:   setting.AppliesToAllPairs,
		CoinPairFilters:     []string{},
		CreatedAt:           setting.CreatedAt.Format(consts.ResponseTimeLayout),
	}
	if setting.CustomThreshold.Valid {
		res.CustomThreshold = setting.CustomThreshold.Decimal.StringFixed(2)
	}
	if setting.CustomOperator.Valid {
		res.CustomOperator = setting.CustomOperator.String
	}
	if len(setting.CoinPairFilters) > 0 {
		_ = json.Unmarshal(setting.CoinPairFilters, &res.CoinPairFilters)
	}
	return res
}
