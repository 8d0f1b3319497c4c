package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var _ NotificationService = (*notificationService)(nil)

type NotificationService interface {
	// NotificationCreate records a fired alert, always as pending
	NotificationCreate(ctx context.Context, req model.NotificationCreateReq) (model.NotificationRes, error)
	NotificationGetListByUser(ctx context.Context, req model.NotificationListReq) (model.NotificationListRes, error)
	// NotificationMarkSent moves pending → sent and stamps sent_at
	NotificationMarkSent(ctx context.Context, id int64) (model.NotificationRes, error)
	// NotificationMarkDismissed moves pending → dismissed and stamps dismissed_at
	NotificationMarkDismissed(ctx context.Context, id int64) (model.NotificationRes, error)
	NotificationCountByStatus(ctx context.Context, userId int64) (model.NotificationCountRes, error)
}

type notificationService struct {
	d  dao.NotificationDao
	ud dao.UserDao
	cp dao.CoinPairDao
	ad dao.AlertSettingDao
}

func NewNotificationService(d dao.NotificationDao, ud dao.UserDao, cp dao.CoinPairDao, ad dao.AlertSettingDao) *notificationService {
	return &notificationService{d: d, ud: ud, cp: cp, ad: ad}
}

func (s *notificationService) NotificationCreate(ctx context.Context, req model.NotificationCreateReq) (res model.NotificationRes, err error) {
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
	if _, err = s.ad.AlertSettingGetById(ctx, req.AlertSettingId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "alert setting %d not found", req.AlertSettingId)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load alert setting failed")
	}

	rsi, err := decimal.NewFromString(req.RSIValue)
	if err != nil {
		return res, errors.WithCode(ecode.ValidateErr, "rsi_value must be a decimal")
	}
	price, err := decimal.NewFromString(req.PriceAtAlert)
	if err != nil {
		return res, errors.WithCode(ecode.ValidateErr, "price_at_alert must be a decimal")
	}

	notification := entity.RSINotification{
		UserId:         req.UserId,
		CoinPairId:     req.CoinPairId,
		AlertSettingId: req.AlertSettingId,
		Title:          req.Title,
		Message:        req.Message,
		RSIValue:       rsi,
		PriceAtAlert:   price,
		Status:         entity.StatusPending,
	}
	if err = s.d.NotificationCreate(ctx, &notification); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "create notification failed")
	}
	return toNotificationRes(notification, pair.Symbol), nil
}

func (s *notificationService) NotificationGetListByUser(ctx context.Context, req model.NotificationListReq) (res model.NotificationListRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	var status entity.NotificationStatus
	if req.Status != nil {
		status = entity.NotificationStatus(*req.Status)
		if !status.Valid() {
			return res, errors.WithCode(ecode.ValidateErr, "status must be one of pending, sent, dismissed")
		}
	}

	page, limit := normalizePage(req.Page, req.Limit)
	arr, err := s.d.NotificationGetListByUser(ctx, req.UserId, status, page, limit)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list notifications failed")
	}
	res.Notifications = make([]model.NotificationRes, 0, len(arr))
	for _, n := range arr {
		symbol := ""
		if n.CoinPair != nil {
			symbol = n.CoinPair.Symbol
		}
		res.Notifications = append(res.Notifications, toNotificationRes(n, symbol))
	}
	return res, nil
}

func (s *notificationService) NotificationMarkSent(ctx context.Context, id int64) (model.NotificationRes, error) {
	return s.transition(ctx, id, entity.StatusSent, "sent_at")
}

func (s *notificationService) NotificationMarkDismissed(ctx context.Context, id int64) (model.NotificationRes, error) {
	return s.transition(ctx, id, entity.StatusDismissed, "dismissed_at")
}

// transition enforces the monotonic status machine: only pending rows move.
func (s *notificationService) transition(ctx context.Context, id int64, to entity.NotificationStatus, stampColumn string) (res model.NotificationRes, err error) {
	cur, err := s.d.NotificationGetById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "notification %d not found", id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load notification failed")
	}
	if !cur.Status.CanTransition(to) {
		return res, errors.WithCode(ecode.StateErr, "notification %d is %s, cannot move to %s", id, cur.Status, to)
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"status":    to,
		stampColumn: now,
	}
	if err = s.d.NotificationUpdateStatus(ctx, id, fields); err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "update notification failed")
	}

	cur.Status = to
	stamp := sql.NullTime{Time: now, Valid: true}
	if to == entity.StatusSent {
		cur.SentAt = stamp
	} else {
		cur.DismissedAt = stamp
	}
	symbol := ""
	if cur.CoinPair != nil {
		symbol = cur.CoinPair.Symbol
	} else if pair, perr := s.cp.CoinPairGetById(ctx, cur.CoinPairId); perr == nil {
		symbol = pair.Symbol
	}
	return toNotificationRes(cur, symbol), nil
}

func (s *notificationService) NotificationCountByStatus(ctx context.Context, userId int64) (res model.NotificationCountRes, err error) {
	counts, err := s.d.NotificationCountByStatus(ctx, userId)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "count notifications failed")
	}
	res.Pending = counts[entity.StatusPending]
	res.Sent = counts[entity.StatusSent]
	res.Dismissed = counts[entity.StatusDismissed]
	return res, nil
}

func toNotificationRes(n entity.RSINotification, symbol string) model.NotificationRes {
	return model.NotificationRes{
		Id:           n.Id,
		Title:        n.Title,
		Message:      n.Message,
		Symbol:       symbol,
		RSIValue:     n.RSIValue.StringFixed(4),
		PriceAtAlert: n.PriceAtAlert.StringFixed(8),
		Status:       string(n.Status),
		CreatedAt:    n.CreatedAt.Format(consts.ResponseTimeLayout),
	}
}
