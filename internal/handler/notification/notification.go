package notification

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.NotificationService
}

func NewHandler(service service.NotificationService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) NotificationCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.NotificationCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.NotificationCreate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) NotificationGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.NotificationListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.NotificationGetListByUser(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) NotificationMarkSent() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.NotificationStatusReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.NotificationMarkSent(ctx, req.Id)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) NotificationMarkDismissed() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.NotificationStatusReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.NotificationMarkDismissed(ctx, req.Id)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) NotificationGetCounts() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.NotificationCountReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.NotificationCountByStatus(ctx, req.UserId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
