package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite-app/catalog"
	"github.com/quickbite/quickbite-app/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetAllRestaurants lists the catalog for the landing page.
func (cc *CatalogController) GetAllRestaurants(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", catalog.Restaurants())
}

// GetRestaurantByID returns a restaurant together with its full menu.
func (cc *CatalogController) GetRestaurantByID(c *gin.Context) {
	id := c.Param("restaurant_id")
	r, ok := catalog.FindRestaurant(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, catalog.ErrRestaurantNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", r)
}
