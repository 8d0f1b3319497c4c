package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rsiboard/internal/consts"
	"rsiboard/internal/dao"
	"rsiboard/internal/model"
	"rsiboard/internal/model/entity"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/validator"
)

var _ UserService = (*userService)(nil)

type UserService interface {
	UserCreate(ctx context.Context, req model.UserCreateReq) (model.UserRes, error)
	UserUpdate(ctx context.Context, req model.UserUpdateReq) (model.UserRes, error)
	UserGetById(ctx context.Context, id int64) (model.UserRes, error)
	UserGetList(ctx context.Context, page, limit int) (model.UserListRes, error)
}

type userService struct {
	d dao.UserDao
}

func NewUserService(d dao.UserDao) *userService {
	return &userService{d: d}
}

func (s *userService) UserCreate(ctx context.Context, req model.UserCreateReq) (res model.UserRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	user := entity.User{
		Username: req.Username,
		Email:    req.Email,
		IsActive: true,
	}
	if err = s.d.UserCreate(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res, errors.Wrap(err, ecode.DuplicateErr, "username or email already taken")
		}
		return res, errors.Wrap(err, ecode.DBErr, "create user failed")
	}
	return toUserRes(user), nil
}

func (s *userService) UserUpdate(ctx context.Context, req model.UserUpdateReq) (res model.UserRes, err error) {
	if err = validator.Struct(&req); err != nil {
		return res, errors.WithCode(ecode.ValidateErr, err.Error())
	}

	cur, err := s.d.UserGetById(ctx, req.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "user %d not found", req.Id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load user failed")
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return toUserRes(cur), nil
	}

	if err = s.d.UserUpdate(ctx, req.Id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return res, errors.Wrap(err, ecode.DuplicateErr, "username or email already taken")
		}
		return res, errors.Wrap(err, ecode.DBErr, "update user failed")
	}

	cur, err = s.d.UserGetById(ctx, req.Id)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "reload user failed")
	}
	return toUserRes(cur), nil
}

func (s *userService) UserGetById(ctx context.Context, id int64) (res model.UserRes, err error) {
	user, err := s.d.UserGetById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, errors.Wrapf(err, ecode.NotFoundErr, "user %d not found", id)
		}
		return res, errors.Wrap(err, ecode.DBErr, "load user failed")
	}
	return toUserRes(user), nil
}

func (s *userService) UserGetList(ctx context.Context, page, limit int) (res model.UserListRes, err error) {
	arr, total, err := s.d.UserGetList(ctx, page, limit)
	if err != nil {
		return res, errors.Wrap(err, ecode.DBErr, "list users failed")
	}
	res.Total = total
	res.Users = make([]model.UserRes, 0, len(arr))
	for _, user := range arr {
		res.Users = append(res.Users, toUserRes(user))
	}
	return res, nil
}

func toUserRes(user entity.User) model.UserRes {
	return model.UserRes{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: time.Time(user.CreatedAt).Format(consts.ResponseTimeLayout),
	}
}
