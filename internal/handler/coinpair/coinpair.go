package coinpair

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.CoinPairService
}

func NewHandler(service service.CoinPairService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CoinPairCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CoinPairCreateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.CoinPairCreate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) CoinPairUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CoinPairUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.CoinPairUpdate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) CoinPairGetDetail() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CoinPairDetailReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.CoinPairGetBySymbol(ctx, req.Symbol)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) CoinPairGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CoinPairListReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.CoinPairGetList(ctx, req.Page, req.Limit)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
