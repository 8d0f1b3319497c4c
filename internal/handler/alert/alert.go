package alert

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.AlertSettingService
}

func NewHandler(service service.AlertSettingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) AlertSettingCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AlertSettingCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.AlertSettingCreate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) AlertSettingUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AlertSettingUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.AlertSettingUpdate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) AlertSettingGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AlertSettingListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.AlertSettingGetListByUser(ctx, req.UserId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) AlertSettingDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.AlertSettingDeleteReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		if err := h.service.AlertSettingDelete(ctx, req.Id); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}
