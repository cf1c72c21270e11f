package kiosk

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chedan888/BBQ/internal/bill"
)

// Handler serves the visitor-facing routes: catalog, cart and bill.
type Handler struct {
	session *Session
}

func NewHandler(session *Session) *Handler {
	return &Handler{session: session}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Menu())
}

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// --------------------------------------------------
// Cart
// --------------------------------------------------

type cartUpdateRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) UpdateCart(c *gin.Context) {
	itemID := c.Param("id")

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delta is required"})
		return
	}

	quantity, err := h.session.UpdateCart(itemID, req.Delta)
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, ErrUnknownItem) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item_id":  itemID,
		"quantity": quantity,
	})
}

// --------------------------------------------------
// Checkout / bill
// --------------------------------------------------

func (h *Handler) Checkout(c *gin.Context) {
	if err := h.session.Checkout(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.session.View()})
}

func (h *Handler) BackToCatalog(c *gin.Context) {
	if err := h.session.BackToCatalog(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.session.View()})
}

func (h *Handler) GetBill(c *gin.Context) {
	summary, err := h.session.Bill()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) ExportBill(c *gin.Context) {
	text, err := h.session.ExportText()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

type spiceRequest struct {
	Level string `json:"level"`
}

func (h *Handler) SetSpice(c *gin.Context) {
	var req spiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level is required"})
		return
	}

	level, err := bill.ParseSpice(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.session.SetSpice(level)
	c.JSON(http.StatusOK, gin.H{"spice": level})
}

// --------------------------------------------------
// Admin gate
// --------------------------------------------------

type loginRequest struct {
	PIN string `json:"pin"`
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pin is required"})
		return
	}

	if err := h.session.EnterAdmin(req.PIN); err != nil {
		if errors.Is(err, ErrWrongPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "密码错误，请重试"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": h.session.View()})
}

func (h *Handler) AdminLogout(c *gin.Context) {
	if err := h.session.ExitAdmin(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.session.View()})
}
