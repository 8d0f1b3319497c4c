package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/cache"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var _ CoinPairService = (*coinPairService)(nil)

type CoinPairService interface {
	CoinPairCreate(ctx context.Context, req model.CoinPairCreateReq) (model.CoinPairRes, error)
	CoinPairUpdate(ctx context.Context, req model.CoinPairUpdateReq) (model.CoinPairRes, error)
	CoinPairGetBySymbol(ctx context.Context, symbol string) (model.CoinPairRes, error)
	CoinPairGetList(ctx context.Context, page, limit int) (model.CoinPairListRes, error)
}

type coinPairService struct {
	d  dao.CoinPairDao
	rd dao.RSIDataDao
}

func NewCoinPairService(d dao.CoinPairDao, rd dao.RSIDataDao) *coinPairService {
	return &coinPairService{d: d, rd: rd}
}

func (s *coinPairService) CoinPairCreate(ctx context.Context, req model.CoinPairCreateReq) (res model.CoinPairRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	pair := entity.CoinPair{
		Symbol:     req.Symbol,
		BaseAsset:  req.BaseAsset,
		QuoteAsset: req.QuoteAsset,
		IsActive:   true,
	}
	if req.IsActive != nil {
		pair.IsActive = *req.IsActive
	}

	if err = s.d.CoinPairCreate(ctx, &pair); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res, errors.Wrapf(err, ecode.DuplicateErr, "symbol %s already exists", req.Symbol)
		}
		return res, errors.Wrap(err, ecode.DBErr, "create coin pair failed")
	}

	return s.toRes(ctx, pair), nil
}

func (s *coinPairService) CoinPairUpdate(ctx context.Context, req model.CoinPairUpdateReq) (res model.CoinPairRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cur, err := s.d.CoinPairGetById(ctx, req.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %d not found", req.Id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}

	// only supplied fields reach the update, absent ones keep their value
	fields := map[string]interface{}{}
	if req.Symbol != nil {
		fields["symbol"] = *req.Symbol
	}
	if req.BaseAsset != nil {
		fields["base_asset"] = *req.BaseAsset
	}
	if req.QuoteAsset != nil {
		fields["quote_asset"] = *req.QuoteAsset
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return s.toRes(ctx, cur), nil
	}

	if err = s.d.CoinPairUpdate(ctx, req.Id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res, errors.Wrap(err, ecode.DuplicateErr, "symbol already exists")
		}
		return res, errors.Wrap(err, ecode.DBErr, "update coin pair failed")
	}

	cur, err = s.d.CoinPairGetById(ctx, req.Id)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "reload coin pair failed")
	}
	return s.toRes(ctx, cur), nil
}

func (s *coinPairService) CoinPairGetBySymbol(ctx context.Context, symbol string) (res model.CoinPairRes, err error) {
	pair, err := s.d.CoinPairGetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %s not found", symbol)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}
	return s.toRes(ctx, pair), nil
}

func (s *coinPairService) CoinPairGetList(ctx context.Context, page, limit int) (res model.CoinPairListRes, err error) {
	arr, total, err := s.d.CoinPairGetList(ctx, page, limit)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list coin pairs failed")
	}
	res.Total = total
	res.CoinPairs = make([]model.CoinPairRes, 0, len(arr))
	for _, pair := range arr {
		res.CoinPairs = append(res.CoinPairs, s.toRes(ctx, pair))
	}
	return res, nil
}

func (s *coinPairService) toRes(ctx context.Context, pair entity.CoinPair) model.CoinPairRes {
	return model.CoinPairRes{
		Id:         pair.Id,
		Symbol:     pair.Symbol,
		BaseAsset:  pair.BaseAsset,
		QuoteAsset: pair.QuoteAsset,
		IsActive:   pair.IsActive,
		CreatedAt:  time.Time(pair.CreatedAt).Format(consts.ResponseTimeLayout),
		LatestRSI:  s.latestRSI(ctx, pair),
	}
}

// latestRSI joins the newest sample onto the pair response, preferring the
// cached value written on ingestion.
func (s *coinPairService) latestRSI(ctx context.Context, pair entity.CoinPair) string {
	if v, ok := cache.Get(ctx, consts.LatestRSIPrefix+pair.Symbol); ok {
		return v
	}
	latest, err := s.rd.RSIDataGetLatest(ctx, pair.Id)
	if err != nil {
		return ""
	}
	v := latest.RSIValue.StringFixed(4)
	cache.Set(ctx, consts.LatestRSIPrefix+pair.Symbol, v, time.Duration(consts.CacheExrDefaultSeconds)*time.Second)
	return v
}
