package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/receipts/internal/domain/errors"
	"github.com/polkiloo/receipts/internal/domain/model"
	"github.com/polkiloo/receipts/internal/pkg/slip"
	"github.com/polkiloo/receipts/internal/server/http/dto"
)

// ReceiptHandler manages receipt-related endpoints.
type ReceiptHandler struct {
	facade ReceiptFacade
}

// NewReceiptHandler constructs ReceiptHandler.
func NewReceiptHandler(facade ReceiptFacade) *ReceiptHandler {
	return &ReceiptHandler{facade: facade}
}

// Create handles POST /receipts/.
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	items := make([]model.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, model.LineItem{Name: p.Name, Price: p.Price, Quantity: p.Quantity})
	}

	receipt, err := h.facade.CreateReceipt(c.Request.Context(), CurrentUsername(c), items, req.PaymentType, req.PaymentAmount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyReceipt),
			errors.Is(err, domainErrors.ErrInvalidLineItem),
			errors.Is(err, domainErrors.ErrInvalidAmount),
			errors.Is(err, domainErrors.ErrInsufficientPayment):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.AbortWithStatus(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toReceiptResponse(receipt))
}

// List handles GET /receipts/.
func (h *ReceiptHandler) List(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid skip parameter"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit parameter"})
		return
	}

	receipts, err := h.facade.Receipts(c.Request.Context(), CurrentUsername(c), offset, limit)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	summaries := make([]dto.ReceiptSummary, 0, len(receipts))
	for _, r := range receipts {
		summaries = append(summaries, dto.ReceiptSummary{
			ID:        r.ID,
			Total:     r.Total,
			Payment:   dto.PaymentInfo{Type: r.PaymentType, Amount: r.PaymentAmount},
			Change:    r.Change,
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.ReceiptsResponse{Receipts: summaries})
}

// View handles GET /receipts/:id/view. Publicly reachable: the rendered slip
// is the customer's copy of the transaction.
func (h *ReceiptHandler) View(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid receipt id"})
		return
	}

	width, err := strconv.Atoi(c.DefaultQuery("line_width", strconv.Itoa(slip.DefaultWidth)))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid line width"})
		return
	}

	text, err := h.facade.RenderReceipt(c.Request.Context(), id, width)
	if err != nil {
		switch {
		case errors.Is(err, slip.ErrInvalidWidth):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "line width must be positive"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "receipt not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptTextResponse{ReceiptText: text})
}

func toReceiptResponse(receipt *model.Receipt) dto.ReceiptResponse {
	products := make([]dto.ProductResponse, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		products = append(products, dto.ProductResponse{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}
	return dto.ReceiptResponse{
		ID:        receipt.ID,
		Products:  products,
		Payment:   dto.PaymentInfo{Type: receipt.PaymentType, Amount: receipt.PaymentAmount},
		Total:     receipt.Total,
		Change:    receipt.Change,
		CreatedAt: receipt.CreatedAt,
	}
}
