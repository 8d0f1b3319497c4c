package service

import (
	"context"

	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var _ PreferenceService = (*preferenceService)(nil)

type PreferenceService interface {
	PreferenceCreate(ctx context.Context, req model.PreferenceCreateReq) (model.PreferenceRes, error)
	PreferenceUpdate(ctx context.Context, req model.PreferenceUpdateReq) (model.PreferenceRes, error)
	PreferenceGetListByUser(ctx context.Context, userId int64) (model.PreferenceListRes, error)
	PreferenceDelete(ctx context.Context, id int64) error
}

type preferenceService struct {
	d  dao.PreferenceDao
	ud dao.UserDao
	cp dao.CoinPairDao
}

func NewPreferenceService(d dao.PreferenceDao, ud dao.UserDao, cp dao.CoinPairDao) *preferenceService {
	return &preferenceService{d: d, ud: ud, cp: cp}
}

func (s *preferenceService) PreferenceCreate(ctx context.Context, req model.PreferenceCreateReq) (res model.PreferenceRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	if _, err = s.ud.UserGetById(ctx, req.UserId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "user %d not found", req.UserId)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load user failed")
	}
	pair, err := s.cp.CoinPairGetById(ctx, req.CoinPairId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %d not found", req.CoinPairId)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}

	pref := entity.UserCoinPreference{
		UserId:     req.UserId,
		CoinPairId: req.CoinPairId,
		IsSelected: true,
	}
	if req.IsSelected != nil {
		pref.IsSelected = *req.IsSelected
	}
	if req.DisplayOrder != nil {
		pref.DisplayOrder = *req.DisplayOrder
	}

	if err = s.d.PreferenceCreate(ctx, &pref); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "create preference failed")
	}
	return toPreferenceRes(pref, pair.Symbol), nil
}

func (s *preferenceService) PreferenceUpdate(ctx context.Context, req model.PreferenceUpdateReq) (res model.PreferenceRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cur, err := s.d.PreferenceGetById(ctx, req.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "preference %d not found", req.Id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load preference failed")
	}

	fields := map[string]interface{}{}
	if req.IsSelected != nil {
		fields["is_selected"] = *req.IsSelected
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if len(fields) > 0 {
		if err = s.d.PreferenceUpdate(ctx, req.Id, fields); err != nil {
			return res, errors.Wrap(err, ecode.DBErr, "update preference failed")
		}
		cur, err = s.d.PreferenceGetById(ctx, req.Id)
		if err != nil {
			return res, errors.Wrap(err, ecode.DBErr, "reload preference failed")
		}
	}

	pair, err := s.cp.CoinPairGetById(ctx, cur.CoinPairId)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}
	return toPreferenceRes(cur, pair.Symbol), nil
}

func (s *preferenceService) PreferenceGetListByUser(ctx context.Context, userId int64) (res model.PreferenceListRes, err error) {
	rows, err := s.d.PreferenceGetListByUser(ctx, userId)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list preferences failed")
	}
	res.Preferences = make([]model.PreferenceRes, 0, len(rows))
	for _, row := range rows {
		res.Preferences = append(res.Preferences, model.PreferenceRes{
			Id:           row.Id,
			UserId:       row.UserId,
			CoinPairId:   row.CoinPairId,
			Symbol:       row.Symbol,
			IsSelected:   row.IsSelected,
			DisplayOrder: row.DisplayOrder,
			CreatedAt:    row.CreatedAt.Format(consts.ResponseTimeLayout),
		})
	}
	return res, nil
}

func (s *preferenceService) PreferenceDelete(ctx context.Context, id int64) error {
	if _, err := s.d.PreferenceGetById(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.Wrapf(err, ecode.NotFoundErr, "preference %d not found", id)
		}
		return errors.Wrap(err, ecode.DBErr, "load preference failed")
	}
	if err := s.d.PreferenceDelete(ctx, id); err != nil {
		return errors.Wrap(err, ecode.DBErr, "delete preference failed")
	}
	return nil
}

func toPreferenceRes(pref entity.UserCoinPreference, symbol string) model.PreferenceRes {
	return model.PreferenceRes{
		Id:           pref.Id,
		UserId:       pref.UserId,
		CoinPairId:   pref.CoinPairId,
		Symbol:       symbol,
		IsSelected:   pref.IsSelected,
		DisplayOrder: pref.DisplayOrder,
		CreatedAt:    pref.CreatedAt.Format(consts.ResponseTimeLayout),
	}
}
