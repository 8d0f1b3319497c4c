package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/cache"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/logger"
	"rsiboard/pkg/validator"
)

var _ RSIDataService = (*rsiDataService)(nil)

type RSIDataService interface {
	// RSIDataCreate stores one sample and prunes the pair's history against
	// the configured max_historical_records
	RSIDataCreate(ctx context.Context, req model.RSIDataCreateReq) (model.RSIDataRes, error)
	RSIDataGetList(ctx context.Context, req model.RSIDataListReq) (model.RSIDataListRes, error)
	RSIDataGetLatest(ctx context.Context, symbol string) (model.RSIDataRes, error)
}

type rsiDataService struct {
	d  dao.RSIDataDao
	cp dao.CoinPairDao
	cf dao.DashboardConfigDao
}

func NewRSIDataService(d dao.RSIDataDao, cp dao.CoinPairDao, cf dao.DashboardConfigDao) *rsiDataService {
	return &rsiDataService{d: d, cp: cp, cf: cf}
}

func (s *rsiDataService) RSIDataCreate(ctx context.Context, req model.RSIDataCreateReq) (res model.RSIDataRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	pair, err := s.cp.CoinPairGetById(ctx, req.CoinPairId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %d not found", req.CoinPairId)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}

	rsi, err := decimal.NewFromString(req.RSIValue)
	if err != nil {
		return res, errors.WithCode(ecode.ValidateErr, "rsi_value must be a decimal")
	}
	if rsi.IsNegative() || rsi.GreaterThan(decimal.NewFromInt(100)) {
		return res, errors.WithCode(ecode.ValidateErr, "rsi_value must be within [0, 100]")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return res, errors.WithCode(ecode.ValidateErr, "price must be a decimal")
	}
	volume := decimal.Zero
	if req.Volume != nil {
		if volume, err = decimal.NewFromString(*req.Volume); err != nil {
			return res, errors.WithCode(ecode.ValidateErr, "volume must be a decimal")
		}
	}

	ts := time.Now().UTC()
	if req.Timestamp != nil {
		if ts, err = time.Parse(consts.ResponseTimeLayout, *req.Timestamp); err != nil {
			return res, errors.WithCode(ecode.ValidateErr, "timestamp must use layout %s", consts.ResponseTimeLayout)
		}
	}

	period := consts.DefaultRSIPeriod
	if req.Period != nil {
		period = *req.Period
	}

	data := entity.RSIData{
		CoinPairId: pair.Id,
		RSIValue:   rsi,
		Price:      price,
		Volume:     volume,
		Timestamp:  ts,
		Period:     period,
	}
	if err = s.d.RSIDataCreate(ctx, &data); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "store rsi sample failed")
	}

	s.pruneHistory(ctx, pair)
	cache.Set(ctx, consts.LatestRSIPrefix+pair.Symbol, rsi.StringFixed(4), time.Duration(consts.CacheExrDefaultSeconds)*time.Second)

	return toRSIDataRes(data, pair.Symbol), nil
}

func (s *rsiDataService) RSIDataGetList(ctx context.Context, req model.RSIDataListReq) (res model.RSIDataListRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}
	pair, err := s.cp.CoinPairGetBySymbol(ctx, req.Symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %s not found", req.Symbol)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}

	page, limit := normalizePage(req.Page, req.Limit)
	arr, err := s.d.RSIDataGetList(ctx, pair.Id, page, limit)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list rsi samples failed")
	}
	res.Samples = make([]model.RSIDataRes, 0, len(arr))
	for _, data := range arr {
		res.Samples = append(res.Samples, toRSIDataRes(data, pair.Symbol))
	}
	return res, nil
}

func (s *rsiDataService) RSIDataGetLatest(ctx context.Context, symbol string) (res model.RSIDataRes, err error) {
	pair, err := s.cp.CoinPairGetBySymbol(ctx, symbol)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "coin pair %s not found", symbol)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load coin pair failed")
	}
	latest, err := s.d.RSIDataGetLatest(ctx, pair.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "no samples for %s", symbol)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load rsi sample failed")
	}
	return toRSIDataRes(latest, pair.Symbol), nil
}

// pruneHistory enforces max_historical_records after every insert. A prune
// failure never fails the ingest, it only logs.
func (s *rsiDataService) pruneHistory(ctx context.Context, pair entity.CoinPair) {
	cfg, err := s.cf.ConfigGet(ctx)
	if err != nil {
		logger.Warnf("skip rsi prune for %s: %v", pair.Symbol, err)
		return
	}
	if err := s.d.RSIDataPrune(ctx, pair.Id, cfg.MaxHistoricalRecords); err != nil {
		logger.Warnf("rsi prune for %s failed: %v", pair.Symbol, err)
	}
}

func toRSIDataRes(data entity.RSIData, symbol string) model.RSIDataRes {
	return model.RSIDataRes{
		Id:        data.Id,
		Symbol:    symbol,
		RSIValue:  data.RSIValue.StringFixed(4),
		Price:     data.Price.StringFixed(8),
		Volume:    data.Volume.StringFixed(8),
		Timestamp: data.Timestamp.Format(consts.ResponseTimeLayout),
		Period:    data.Period,
	}
}

// normalizePage keeps paging sane for every list endpoint.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	return page, limit
}
