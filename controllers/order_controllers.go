package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite-app/cart"
	"github.com/quickbite/quickbite-app/models"
	"github.com/quickbite/quickbite-app/services"
	"github.com/quickbite/quickbite-app/statemachine"
	"github.com/quickbite/quickbite-app/storage"
	"github.com/quickbite/quickbite-app/store"
	"github.com/quickbite/quickbite-app/utils"
)

type OrderController struct {
	Service *services.OrderService
	Store   *store.OrderStore
	Cart    *cart.Cart
	Storage storage.Backend
}

func NewOrderController(svc *services.OrderService, st *store.OrderStore, ct *cart.Cart, backend storage.Backend) *OrderController {
	return &OrderController{Service: svc, Store: st, Cart: ct, Storage: backend}
}

// Checkout converts the session cart into an order and clears the cart on
// success. Validation failures surface to the caller; the store is untouched.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.CreateOrder(oc.Cart.Lines(), services.CustomerInfo{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	switch {
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrMissingCustomerInfo):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Clearing the cart is the checkout flow's job, not the order core's.
	oc.Cart.Clear()

	utils.InfoLogger.Printf("Order %s created (invoice %s, total %s)", order.ID, order.InvoiceNumber, utils.FormatCurrency(order.Total))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// CheckoutPrefill returns the stored session profile as a customer info
// draft for the checkout form.
func (oc *OrderController) CheckoutPrefill(c *gin.Context) {
	raw, ok, err := oc.Storage.Get(storage.SessionKey)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "No active session", services.CustomerInfo{})
		return
	}

	var profile models.SessionProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		utils.RespondJSON(c, http.StatusOK, "No active session", services.CustomerInfo{})
		return
	}

	name := profile.FirstName
	if profile.LastName != "" {
		name += " " + profile.LastName
	}
	utils.RespondJSON(c, http.StatusOK, "Checkout prefill", services.CustomerInfo{
		Name:    name,
		Address: profile.Address,
		Phone:   profile.Phone,
	})
}

// trackerSteps is the linear progression rendered by the tracking page.
var trackerSteps = []models.OrderStatus{
	models.StatusPending, models.StatusPreparing, models.StatusReady,
	models.StatusDelivering, models.StatusDelivered,
}

// GetOrderByID returns one order plus its progress step for the tracker.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, ok := oc.Store.ByID(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, store.ErrOrderNotFound)
		return
	}

	step := -1
	for i, s := range trackerSteps {
		if s == order.Status {
			step = i
			break
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order":       order,
		"step":        step,
		"total_steps": len(trackerSteps),
	})
}

// GetAllOrders lists every order, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of orders", oc.Store.All())
}

// GetOrdersByStatus filters by the status query parameter.
func (oc *OrderController) GetOrdersByStatus(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if !status.IsValid() {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown status"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders by status", oc.Store.ByStatus(status))
}

// GetActiveOrders returns all still-actionable orders.
func (oc *OrderController) GetActiveOrders(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Active orders", oc.Store.ActiveOrders())
}

// GetDashboard partitions active orders into the staff board's columns and
// appends the completed (delivered or cancelled) ones.
func (oc *OrderController) GetDashboard(c *gin.Context) {
	columns := gin.H{}
	for _, status := range models.ActiveStatuses {
		columns[string(status)] = oc.Store.ByStatus(status)
	}
	columns["completed"] = oc.Store.CompletedOrders()
	utils.RespondJSON(c, http.StatusOK, "Dashboard", columns)
}

// AdvanceOrder moves an order to its next state. When the order is already
// terminal the response reports that no change occurred (lenient policy) or
// a conflict (strict policy).
func (oc *OrderController) AdvanceOrder(c *gin.Context) {
	order, changed, err := oc.Store.Advance(c.Param("order_id"))
	oc.respondTransition(c, order, changed, err, "Order advanced")
}

// CancelOrder cancels an order unless it is already delivered or cancelled.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	order, changed, err := oc.Store.Cancel(c.Param("order_id"))
	oc.respondTransition(c, order, changed, err, "Order cancelled")
}

func (oc *OrderController) respondTransition(c *gin.Context, order models.Order, changed bool, err error, msg string) {
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
		return
	case errors.Is(err, statemachine.ErrInvalidTransition):
		utils.RespondError(c, http.StatusConflict, err)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !changed {
		utils.RespondJSON(c, http.StatusOK, "No change", order)
		return
	}
	utils.RespondJSON(c, http.StatusOK, msg, order)
}

// GetInvoice returns the billing view of an order: line items, subtotal,
// delivery fee and the 10% tax share of the total. Read-only.
func (oc *OrderController) GetInvoice(c *gin.Context) {
	order, ok := oc.Store.ByID(c.Param("order_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, store.ErrOrderNotFound)
		return
	}

	subtotal := order.Subtotal()
	utils.RespondJSON(c, http.StatusOK, "Invoice", gin.H{
		"invoice_number": order.InvoiceNumber,
		"order":          order,
		"subtotal":       subtotal,
		"delivery_fee":   order.DeliveryFee,
		"tax":            subtotal * 0.1,
		"total":          order.Total,
	})
}
