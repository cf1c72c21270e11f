package kiosk

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chedan888/BBQ/internal/menu"
	"github.com/chedan888/BBQ/internal/menuimport"
)

// AdminHandler serves the PIN-gated catalog editing routes.
type AdminHandler struct {
	session *Session
}

func NewAdminHandler(session *Session) *AdminHandler {
	return &AdminHandler{session: session}
}

// --------------------------------------------------
// Catalog editing
// --------------------------------------------------

type addItemRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
}

func (h *AdminHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": menu.ErrMissingFields.Error()})
		return
	}

	item, err := h.session.AddMenuItem(c.Request.Context(), req.Name, *req.Price, req.Category)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, menu.ErrMissingFields), errors.Is(err, menu.ErrInvalidPrice):
			status = http.StatusBadRequest
		case errors.Is(err, ErrWrongView):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.session.RemoveMenuItem(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrWrongView) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// --------------------------------------------------
// Menu import
// --------------------------------------------------

func (h *AdminHandler) ImportMenu(c *gin.Context) {
	file, header, err := c.Request.FormFile("menu_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_image is required"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	candidate, err := h.session.ImportMenu(
		c.Request.Context(),
		image,
		header.Header.Get("Content-Type"),
	)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, menuimport.ErrImportInFlight):
			status = http.StatusTooManyRequests
		case errors.Is(err, menuimport.ErrNotConfigured):
			status = http.StatusServiceUnavailable
		case errors.Is(err, ErrWrongView):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (h *AdminHandler) ConfirmImport(c *gin.Context) {
	id := c.Param("id")

	if err := h.session.ConfirmImport(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNoCandidate):
			status = http.StatusNotFound
		case errors.Is(err, ErrWrongView):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": id})
}

func (h *AdminHandler) DiscardImport(c *gin.Context) {
	id := c.Param("id")

	if err := h.session.DiscardImport(id); err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNoCandidate):
			status = http.StatusNotFound
		case errors.Is(err, ErrWrongView):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"discarded": id})
}
