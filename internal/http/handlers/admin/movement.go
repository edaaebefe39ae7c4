package admin

import (
	"github.com/fixture-next/internal/http/handlers/shared"
	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// movementHandlers 收料与退料共用同一组处理逻辑
type movementHandlers struct {
	svc func(*Handler) *service.MovementService
}

var (
	receiptHandlers = movementHandlers{svc: func(h *Handler) *service.MovementService { return h.ReceiptService }}
	returnHandlers  = movementHandlers{svc: func(h *Handler) *service.MovementService { return h.ReturnService }}
)

func (m movementHandlers) list(h *Handler, c *gin.Context) {
	rows, err := m.svc(h).List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, rows)
}

func (m movementHandlers) create(h *Handler, c *gin.Context) {
	var req service.MovementInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid movement body", err)
		return
	}
	if _, err := m.svc(h).Create(req); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

func (m movementHandlers) remove(h *Handler, c *gin.Context) {
	id, ok := shared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := m.svc(h).Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessOK(c)
}

// ListReceipts 收料记录
func (h *Handler) ListReceipts(c *gin.Context) { receiptHandlers.list(h, c) }

// CreateReceipt 新增收料
func (h *Handler) CreateReceipt(c *gin.Context) { receiptHandlers.create(h, c) }

// DeleteReceipt 删除收料
func (h *Handler) DeleteReceipt(c *gin.Context) { receiptHandlers.remove(h, c) }

// ListReturns 退料记录
func (h *Handler) ListReturns(c *gin.Context) { returnHandlers.list(h, c) }

// CreateReturn 新增退料
func (h *Handler) CreateReturn(c *gin.Context) { returnHandlers.create(h, c) }

// DeleteReturn 删除退料
func (h *Handler) DeleteReturn(c *gin.Context) { returnHandlers.remove(h, c) }
