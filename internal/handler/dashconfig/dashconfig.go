package dashconfig

import (
	"github.com/gin-gonic/gin"

	"rsiboard/internal/model"
	"rsiboard/internal/service"
	"rsiboard/pkg/errors"
	"rsiboard/pkg/errors/ecode"
	"rsiboard/pkg/response"
)

type Handler struct {
	service service.DashboardConfigService
}

func NewHandler(service service.DashboardConfigService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ConfigGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res, err := h.service.ConfigGet(ctx)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

func (h *Handler) ConfigUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.DashboardConfigUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		res, err := h.service.ConfigUpdate(ctx, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}
