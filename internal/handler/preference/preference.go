package preference

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.PreferenceService
}

func NewHandler(service service.PreferenceService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) PreferenceCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PreferenceCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.PreferenceCreate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) PreferenceUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PreferenceUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.PreferenceUpdate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) PreferenceGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PreferenceListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.PreferenceGetListByUser(ctx, req.UserId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) PreferenceDelete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.PreferenceDeleteReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		if err := h.service.PreferenceDelete(ctx, req.Id); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}
