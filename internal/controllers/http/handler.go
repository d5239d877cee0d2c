package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raamveerrr/pos/internal/auth"
	"github.com/raamveerrr/pos/internal/domain"
	"github.com/raamveerrr/pos/internal/services"
)

type Handler struct {
	orders   *services.OrderService
	payments *services.PaymentService
	tables   *services.TableService
	menu     *services.MenuService
	reports  *services.ReportService
	tokens   *auth.TokenManager
}

func NewHandler(
	orders *services.OrderService,
	payments *services.PaymentService,
	tables *services.TableService,
	menu *services.MenuService,
	reports *services.ReportService,
	tokens *auth.TokenManager,
) *Handler {
	return &Handler{
		orders:   orders,
		payments: payments,
		tables:   tables,
		menu:     menu,
		reports:  reports,
		tokens:   tokens,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(corsMiddleware())
	r.GET("/healthz", h.Health)

	authed := r.Group("", authMiddleware(h.tokens))
	authed.POST("/functions/payments/initiate", h.InitiatePayment)

	authed.POST("/orders", h.SubmitOrder)
	authed.GET("/orders", h.ListOrders)
	authed.GET("/orders/:id", h.GetOrder)
	authed.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	authed.GET("/orders/:id/payments", h.ListOrderPayments)

	authed.GET("/tables", h.ListTables)
	authed.PATCH("/tables/:id/status", h.UpdateTableStatus)

	authed.GET("/menu", h.ListMenu)
	authed.POST("/menu", h.CreateMenuItem)
	authed.PATCH("/menu/:id", h.UpdateMenuItem)
	authed.DELETE("/menu/:id", h.DisableMenuItem)

	authed.GET("/inventory", h.ListInventory)
	authed.GET("/inventory/low-stock", h.LowStock)
	authed.POST("/inventory/:id/adjust", h.AdjustStock)

	authed.GET("/reports/revenue", h.Revenue)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// InitiatePayment is the settlement endpoint. Per its contract every failure
// past authentication is a 400 with {success:false, error}; 401 is reserved
// for a missing or unparseable bearer token.
func (h *Handler) InitiatePayment(c *gin.Context) {
	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.payments.Initiate(c.Request.Context(), c.GetString(ctxUserID), services.InitiatePaymentInput{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(result))
}

func (h *Handler) SubmitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orders.Submit(c.Request.Context(), req.toOrderRequest(c.GetString(ctxRestaurantID), c.GetString(ctxUserID)))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": result.Order, "payment": toPaymentResponse(result.Payment)})
}

func (h *Handler) ListOrders(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), c.GetString(ctxRestaurantID), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"), domain.OrderStatus(req.Status), c.GetString(ctxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListOrderPayments(c *gin.Context) {
	payments, err := h.payments.ListByOrder(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.tables.ListTables(c.Request.Context(), c.GetString(ctxRestaurantID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) UpdateTableStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.UpdateStatus(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"), domain.TableStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) ListMenu(c *gin.Context) {
	availableOnly := c.Query("available") == "true"
	items, err := h.menu.ListMenu(c.Request.Context(), c.GetString(ctxRestaurantID), availableOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.menu.CreateItem(c.Request.Context(), &domain.MenuItem{
		RestaurantID: c.GetString(ctxRestaurantID),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsVeg:        req.IsVeg,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.menu.UpdateItem(c.Request.Context(), c.GetString(ctxRestaurantID), &domain.MenuItem{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsVeg:       req.IsVeg,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DisableMenuItem soft-deletes by clearing the availability flag so past
// orders keep a valid menu item reference.
func (h *Handler) DisableMenuItem(c *gin.Context) {
	if err := h.menu.SetAvailability(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"), false); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disabled": true})
}

func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.reports.Inventory(c.Request.Context(), c.GetString(ctxRestaurantID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) LowStock(c *gin.Context) {
	items, err := h.reports.LowStock(c.Request.Context(), c.GetString(ctxRestaurantID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) AdjustStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.reports.AdjustStock(c.Request.Context(), c.GetString(ctxRestaurantID), c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) Revenue(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := h.reports.Revenue(c.Request.Context(), c.GetString(ctxRestaurantID), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// respondError maps the error taxonomy onto HTTP codes for the REST surface.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrInventoryItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
