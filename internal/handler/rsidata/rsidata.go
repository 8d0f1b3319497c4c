package rsidata

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.RSIDataService
}

func NewHandler(service service.RSIDataService) *Handler {
	return &Handler{service: service}
}

// RSIDataCreate ingests one sample from the indicator pipeline.
func (h *Handler) RSIDataCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.RSIDataCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.RSIDataCreate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) RSIDataGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.RSIDataListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.RSIDataGetList(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) RSIDataGetLatest() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CoinPairDetailReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.RSIDataGetLatest(ctx, req.Symbol)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
