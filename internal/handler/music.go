package handler

import (
	"net/http"

	"dodotable/internal/condition"
	"dodotable/internal/domain"
	"dodotable/internal/environment"
	"dodotable/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ListMusic serves the catalog table as an HTML page. Search, filter, sort
// and pagination all travel through query arguments.
func (h *Handler) ListMusic(c *gin.Context) {
	env := environment.NewGinEnvironment(c)
	args := condition.ArgsFromValues(c.Request.URL.Query())

	table, err := h.musicUC.Page(c.Request.Context(), env, args)
	if err != nil {
		log.WithError(err).Error("list music failed")
		mapDomainError(c, err)
		return
	}

	body, err := table.HTML()
	if err != nil {
		log.WithError(err).Error("render music table failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	page, err := render.HTML("page.html", gin.H{
		"Lang":  env.Locale(),
		"Title": table.Label,
		"Body":  body,
	})
	if err != nil {
		log.WithError(err).Error("render music page failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) GetMusic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidID.Error()})
		return
	}

	m, err := h.musicUC.Get(c.Request.Context(), id)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
