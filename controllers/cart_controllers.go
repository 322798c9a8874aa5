package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite-app/cart"
	"github.com/quickbite/quickbite-app/catalog"
	"github.com/quickbite/quickbite-app/utils"
)

// CartController exposes the single session cart. Prices and line identity
// are computed against the catalog here; the cart itself never re-validates.
type CartController struct {
	Cart *cart.Cart
}

func NewCartController(c *cart.Cart) *CartController {
	return &CartController{Cart: c}
}

type cartView struct {
	Items          interface{} `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	LineCount      int         `json:"line_count"`
	TotalItemCount int         `json:"total_item_count"`
}

func (cc *CartController) view() cartView {
	return cartView{
		Items:          cc.Cart.Lines(),
		Subtotal:       cc.Cart.Subtotal(),
		LineCount:      cc.Cart.LineCount(),
		TotalItemCount: cc.Cart.TotalItemCount(),
	}
}

// GetCart returns the current lines with derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart", cc.view())
}

// AddItem builds a cart line from the catalog and adds it. Re-adding the same
// item+options combination increments the existing line's quantity.
func (cc *CartController) AddItem(c *gin.Context) {
	type request struct {
		RestaurantID string   `json:"restaurant_id" binding:"required"`
		ItemID       string   `json:"item_id" binding:"required"`
		Options      []string `json:"options"`
		Quantity     int      `json:"quantity"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	line, err := catalog.BuildCartLine(req.RestaurantID, req.ItemID, req.Options)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if req.Quantity > 0 {
		line.Quantity = req.Quantity
	}

	cc.Cart.AddLine(line)
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.view())
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity is required"))
		return
	}

	cc.Cart.SetQuantity(c.Param("line_id"), *req.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.view())
}

// RemoveItem deletes a line. Removing an absent line is not an error.
func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.Cart.RemoveLine(c.Param("line_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed", cc.view())
}

// ClearCart empties the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.view())
}
