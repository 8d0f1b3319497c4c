package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
)

// In-memory DAO fakes mirroring the gorm error contract: missing rows
// return gorm.ErrRecordNotFound, unique violations gorm.ErrDuplicatedKey.

type fakeCoinPairDao struct {
	pairs  map[int64]entity.CoinPair
	nextId int64
}

func newFakeCoinPairDao() *fakeCoinPairDao {
	return &fakeCoinPairDao{pairs: map[int64]entity.CoinPair{}}
}

func (f *fakeCoinPairDao) CoinPairCreate(_ context.Context, pair *entity.CoinPair) error {
	for _, p := range f.pairs {
		if p.Symbol == pair.Symbol {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextId++
	pair.Id = f.nextId
	f.pairs[pair.Id] = *pair
	return nil
}

func (f *fakeCoinPairDao) CoinPairUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	pair, ok := f.pairs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "symbol":
			pair.Symbol = v.(string)
		case "base_asset":
			pair.BaseAsset = v.(string)
		case "quote_asset":
			pair.QuoteAsset = v.(string)
		case "is_active":
			pair.IsActive = v.(bool)
		}
	}
	f.pairs[id] = pair
	return nil
}

func (f *fakeCoinPairDao) CoinPairGetById(_ context.Context, id int64) (entity.CoinPair, error) {
	pair, ok := f.pairs[id]
	if !ok {
		return entity.CoinPair{}, gorm.ErrRecordNotFound
	}
	return pair, nil
}

func (f *fakeCoinPairDao) CoinPairGetBySymbol(_ context.Context, symbol string) (entity.CoinPair, error) {
	for _, p := range f.pairs {
		if p.Symbol == symbol {
			return p, nil
		}
	}
	return entity.CoinPair{}, gorm.ErrRecordNotFound
}

func (f *fakeCoinPairDao) CoinPairGetList(_ context.Context, _, _ int) ([]entity.CoinPair, int64, error) {
	arr := make([]entity.CoinPair, 0, len(f.pairs))
	for _, p := range f.pairs {
		arr = append(arr, p)
	}
	return arr, int64(len(arr)), nil
}

type pruneCall struct {
	coinPairId int64
	keep       int
}

type fakeRSIDataDao struct {
	samples    map[int64]entity.RSIData
	nextId     int64
	pruneCalls []pruneCall
}

func newFakeRSIDataDao() *fakeRSIDataDao {
	return &fakeRSIDataDao{samples: map[int64]entity.RSIData{}}
}

func (f *fakeRSIDataDao) RSIDataCreate(_ context.Context, data *entity.RSIData) error {
	f.nextId++
	data.Id = f.nextId
	f.samples[data.Id] = *data
	return nil
}

func (f *fakeRSIDataDao) RSIDataGetLatest(_ context.Context, coinPairId int64) (entity.RSIData, error) {
	var latest entity.RSIData
	found := false
	for _, s := range f.samples {
		if s.CoinPairId != coinPairId {
			continue
		}
		if !found || s.Timestamp.After(latest.Timestamp) {
			latest = s
			found = true
		}
	}
	if !found {
		return entity.RSIData{}, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (f *fakeRSIDataDao) RSIDataGetList(_ context.Context, coinPairId int64, _, _ int) ([]entity.RSIData, error) {
	var arr []entity.RSIData
	for _, s := range f.samples {
		if s.CoinPairId == coinPairId {
			arr = append(arr, s)
		}
	}
	return arr, nil
}

func (f *fakeRSIDataDao) RSIDataPrune(_ context.Context, coinPairId int64, keep int) error {
	f.pruneCalls = append(f.pruneCalls, pruneCall{coinPairId: coinPairId, keep: keep})
	return nil
}

type fakeUserDao struct {
	users  map[int64]entity.User
	nextId int64
}

func newFakeUserDao() *fakeUserDao {
	return &fakeUserDao{users: map[int64]entity.User{}}
}

func (f *fakeUserDao) UserCreate(_ context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextId++
	user.Id = f.nextId
	f.users[user.Id] = *user
	return nil
}

func (f *fakeUserDao) UserUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "username":
			user.Username = v.(string)
		case "email":
			user.Email = v.(string)
		case "is_active":
			user.IsActive = v.(bool)
		}
	}
	f.users[id] = user
	return nil
}

func (f *fakeUserDao) UserGetById(_ context.Context, id int64) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserDao) UserGetList(_ context.Context, _, _ int) ([]entity.User, int64, error) {
	arr := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		arr = append(arr, u)
	}
	return arr, int64(len(arr)), nil
}

type fakePreferenceDao struct {
	prefs   map[int64]entity.UserCoinPreference
	symbols map[int64]string
	nextId  int64
}

func newFakePreferenceDao() *fakePreferenceDao {
	return &fakePreferenceDao{
		prefs:   map[int64]entity.UserCoinPreference{},
		symbols: map[int64]string{},
	}
}

func (f *fakePreferenceDao) PreferenceCreate(_ context.Context, pref *entity.UserCoinPreference) error {
	f.nextId++
	pref.Id = f.nextId
	f.prefs[pref.Id] = *pref
	return nil
}

func (f *fakePreferenceDao) PreferenceUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	pref, ok := f.prefs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "is_selected":
			pref.IsSelected = v.(bool)
		case "display_order":
			pref.DisplayOrder = v.(int)
		}
	}
	f.prefs[id] = pref
	return nil
}

func (f *fakePreferenceDao) PreferenceGetById(_ context.Context, id int64) (entity.UserCoinPreference, error) {
	pref, ok := f.prefs[id]
	if !ok {
		return entity.UserCoinPreference{}, gorm.ErrRecordNotFound
	}
	return pref, nil
}

func (f *fakePreferenceDao) PreferenceGetListByUser(_ context.Context, userId int64) ([]model.PreferenceRow, error) {
	var rows []model.PreferenceRow
	for _, p := range f.prefs {
		if p.UserId != userId {
			continue
		}
		rows = append(rows, model.PreferenceRow{
			Id:           p.Id,
			UserId:       p.UserId,
			CoinPairId:   p.CoinPairId,
			Symbol:       f.symbols[p.CoinPairId],
			IsSelected:   p.IsSelected,
			DisplayOrder: p.DisplayOrder,
			CreatedAt:    p.CreatedAt,
		})
	}
	return rows, nil
}

func (f *fakePreferenceDao) PreferenceDelete(_ context.Context, id int64) error {
	if _, ok := f.prefs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.prefs, id)
	return nil
}

type fakeAlertSettingDao struct {
	settings map[int64]entity.AlertSetting
	nextId   int64
}

func newFakeAlertSettingDao() *fakeAlertSettingDao {
	return &fakeAlertSettingDao{settings: map[int64]entity.AlertSetting{}}
}

func (f *fakeAlertSettingDao) AlertSettingCreate(_ context.Context, setting *entity.AlertSetting) error {
	f.nextId++
	setting.Id = f.nextId
	f.settings[setting.Id] = *setting
	return nil
}

func (f *fakeAlertSettingDao) AlertSettingUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	setting, ok := f.settings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			setting.Name = v.(string)
		case "condition":
			setting.Condition = v.(entity.AlertCondition)
		case "overbought_threshold":
			setting.OverboughtThreshold = decimal.RequireFromString(v.(string))
		case "oversold_threshold":
			setting.OversoldThreshold = decimal.RequireFromString(v.(string))
		case "custom_threshold":
			setting.CustomThreshold = decimal.NewNullDecimal(decimal.RequireFromString(v.(string)))
		case "custom_operator":
			setting.CustomOperator = sql.NullString{String: v.(string), Valid: true}
		case "is_enabled":
			setting.IsEnabled = v.(bool)
		case "applies_to_all_pairs":
			setting.AppliesToAllPairs = v.(bool)
		case "coin_pair_filters":
			setting.CoinPairFilters = v.(datatypes.JSON)
		}
	}
	f.settings[id] = setting
	return nil
}

func (f *fakeAlertSettingDao) AlertSettingGetById(_ context.Context, id int64) (entity.AlertSetting, error) {
	setting, ok := f.settings[id]
	if !ok {
		return entity.AlertSetting{}, gorm.ErrRecordNotFound
	}
	return setting, nil
}

func (f *fakeAlertSettingDao) AlertSettingGetListByUser(_ context.Context, userId int64) ([]entity.AlertSetting, error) {
	var arr []entity.AlertSetting
	for _, s := range f.settings {
		if s.UserId == userId {
			arr = append(arr, s)
		}
	}
	return arr, nil
}

func (f *fakeAlertSettingDao) AlertSettingDelete(_ context.Context, id int64) error {
	if _, ok := f.settings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.settings, id)
	return nil
}

type fakeNotificationDao struct {
	notifications map[int64]entity.RSINotification
	nextId        int64
}

func newFakeNotificationDao() *fakeNotificationDao {
	return &fakeNotificationDao{notifications: map[int64]entity.RSINotification{}}
}

func (f *fakeNotificationDao) NotificationCreate(_ context.Context, n *entity.RSINotification) error {
	f.nextId++
	n.Id = f.nextId
	n.CreatedAt = time.Now().UTC()
	f.notifications[n.Id] = *n
	return nil
}

func (f *fakeNotificationDao) NotificationGetById(_ context.Context, id int64) (entity.RSINotification, error) {
	n, ok := f.notifications[id]
	if !ok {
		return entity.RSINotification{}, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (f *fakeNotificationDao) NotificationGetListByUser(_ context.Context, userId int64, status entity.NotificationStatus, _, _ int) ([]entity.RSINotification, error) {
	var arr []entity.RSINotification
	for _, n := range f.notifications {
		if n.UserId != userId {
			continue
		}
		if status != "" && n.Status != status {
			continue
		}
		arr = append(arr, n)
	}
	return arr, nil
}

func (f *fakeNotificationDao) NotificationUpdateStatus(_ context.Context, id int64, fields map[string]interface{}) error {
	n, ok := f.notifications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			n.Status = v.(entity.NotificationStatus)
		case "sent_at":
			n.SentAt = sql.NullTime{Time: v.(time.Time), Valid: true}
		case "dismissed_at":
			n.DismissedAt = sql.NullTime{Time: v.(time.Time), Valid: true}
		}
	}
	f.notifications[id] = n
	return nil
}

func (f *fakeNotificationDao) NotificationCountByStatus(_ context.Context, userId int64) (map[entity.NotificationStatus]int64, error) {
	counts := map[entity.NotificationStatus]int64{}
	for _, n := range f.notifications {
		if n.UserId == userId {
			counts[n.Status]++
		}
	}
	return counts, nil
}

type fakeDashboardConfigDao struct {
	cfg entity.DashboardConfig
}

func newFakeDashboardConfigDao() *fakeDashboardConfigDao {
	cfg := entity.DefaultDashboardConfig()
	cfg.Id = 1
	return &fakeDashboardConfigDao{cfg: *cfg}
}

func (f *fakeDashboardConfigDao) ConfigGet(_ context.Context) (entity.DashboardConfig, error) {
	return f.cfg, nil
}

func (f *fakeDashboardConfigDao) ConfigUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	if id != f.cfg.Id {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "refresh_interval":
			f.cfg.RefreshInterval = v.(int)
		case "default_rsi_period":
			f.cfg.DefaultRSIPeriod = v.(int)
		case "max_historical_records":
			f.cfg.MaxHistoricalRecords = v.(int)
		case "display_settings":
			f.cfg.DisplaySettings = v.(datatypes.JSONMap)
		case "api_settings":
			f.cfg.ApiSettings = v.(datatypes.JSONMap)
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }

// seedPair and seedUser cut the boilerplate of arranging foreign rows.
func seedPair(d *fakeCoinPairDao, symbol string) entity.CoinPair {
	pair := entity.CoinPair{Symbol: symbol, BaseAsset: symbol[:3], QuoteAsset: "USDT", IsActive: true}
	_ = d.CoinPairCreate(context.Background(), &pair)
	return pair
}

func seedUser(d *fakeUserDao, username string) entity.User {
	user := entity.User{Username: username, Email: username + "@example.com", IsActive: true}
	_ = d.UserCreate(context.Background(), &user)
	return user
}
