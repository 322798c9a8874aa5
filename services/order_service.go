package services

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quickbite/quickbite-app/models"
	"github.com/quickbite/quickbite-app/store"
)

// DeliveryFee is the fixed per-order delivery fee.
const DeliveryFee = 2.99

// estimatedDeliveryDelay is the static window announced at checkout.
const estimatedDeliveryDelay = 45 * time.Minute

var (
	ErrEmptyCart           = errors.New("cannot create an order from an empty cart")
	ErrMissingCustomerInfo = errors.New("customer name, address and phone are required")
)

// CustomerInfo is the contact block attached to an order at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// OrderService converts a finalized cart into a persisted order. It owns
// order identity and invoice number generation; the store owns persistence.
type OrderService struct {
	store *store.OrderStore

	mu         sync.Mutex
	invoiceSeq int
}

// NewOrderService seeds the invoice sequence from the highest invoice number
// already in the store, so numbers stay unique across restarts.
func NewOrderService(st *store.OrderStore) *OrderService {
	s := &OrderService{store: st}
	for _, o := range st.All() {
		if n, ok := invoiceSeqOf(o.InvoiceNumber); ok && n > s.invoiceSeq {
			s.invoiceSeq = n
		}
	}
	return s
}

// CreateOrder snapshots the cart lines and customer info into a new order,
// prepends it to the store and persists the collection. The cart itself is
// not touched; clearing it after a successful checkout is the caller's job.
func (s *OrderService) CreateOrder(lines []models.CartLine, info CustomerInfo) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Address) == "" ||
		strings.TrimSpace(info.Phone) == "" {
		return models.Order{}, ErrMissingCustomerInfo
	}

	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	var subtotal float64
	for _, l := range items {
		subtotal += l.LineTotal()
	}

	now := time.Now()
	order := models.Order{
		ID:                s.newOrderID(),
		InvoiceNumber:     s.nextInvoiceNumber(now),
		Items:             items,
		Status:            models.StatusPending,
		DeliveryFee:       DeliveryFee,
		Total:             subtotal + DeliveryFee,
		CustomerName:      info.Name,
		CustomerAddress:   info.Address,
		CustomerPhone:     info.Phone,
		RestaurantID:      items[0].RestaurantID,
		RestaurantName:    items[0].RestaurantName,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryDelay),
	}

	if err := s.store.Prepend(order); err != nil {
		return order, err
	}
	return order, nil
}

// newOrderID allocates a fresh order id, retrying on the off chance the
// random part collides with an existing order.
func (s *OrderService) newOrderID() string {
	for {
		u := uuid.New()
		id := "ORD-" + strings.ToUpper(hex.EncodeToString(u[:6]))
		if _, exists := s.store.ByID(id); !exists {
			return id
		}
	}
}

// nextInvoiceNumber hands out year-scoped sequential billing numbers,
// e.g. INV-2026-00042.
func (s *OrderService) nextInvoiceNumber(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoiceSeq++
	return fmt.Sprintf("INV-%d-%05d", now.Year(), s.invoiceSeq)
}

// invoiceSeqOf extracts the sequence part of an INV-<year>-<seq> number.
func invoiceSeqOf(invoice string) (int, bool) {
	parts := strings.Split(invoice, "-")
	if len(parts) != 3 || parts[0] != "INV" {
		return 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return n, true
}
