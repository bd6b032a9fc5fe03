package handler

import (
	"dodotable/internal/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	musicUC *usecase.MusicTableUseCase
}

func New(musicUC *usecase.MusicTableUseCase) *Handler {
	return &Handler{musicUC: musicUC}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/music", h.ListMusic)
	r.GET("/music/:id", h.GetMusic)
}
