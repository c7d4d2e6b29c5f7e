package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mvs/db"
	"mvs/models"
	"mvs/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const sessionCookie = "mvs_cart"

// Handler serves the cart endpoints for one registry of session carts.
type Handler struct {
	Carts *Registry
}

func NewHandler(carts *Registry) *Handler {
	return &Handler{Carts: carts}
}

// SessionID reads the cart session cookie, minting one if absent.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := utils.GenerateRandomString(16)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func cartState(c *Cart) utils.M {
	quote := c.Quote()
	return utils.M{
		"items":     c.Lines(),
		"itemCount": c.ItemCount(),
		"subtotal":  c.Subtotal(),
		"shipping":  quote,
		"total":     c.Subtotal() + quote.Cost,
	}
}

// GetCart returns the session's lines plus derived totals and the
// current shipping quote.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.Carts.Get(SessionID(w, r))
	utils.RespondWithJSON(w, http.StatusOK, cartState(c))
}

// GetShippingQuote exposes the quote on its own for the cart page.
func (h *Handler) GetShippingQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.Carts.Get(SessionID(w, r))
	utils.RespondWithJSON(w, http.StatusOK, c.Quote())
}

// AddItem looks the product up in the catalog, snapshots it into the
// cart and bumps the quantity, clamped to 50 and to current stock.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Product ID is required", http.StatusBadRequest)
		return
	}

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productId": payload.ProductID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Println("AddItem FindOne error:", err)
		http.Error(w, "Could not load product", http.StatusInternalServerError)
		return
	}

	c := h.Carts.Get(SessionID(w, r))
	if err := c.AddItem(product, payload.Quantity, product.StockCount); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, cartState(c))
}

// UpdateQuantity sets a line's quantity exactly, clamped to stock.
// Out-of-range quantities are rejected, the cart stays as it was.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	availableStock := -1
	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productId": productID}).Decode(&product)
	if err == nil {
		availableStock = product.StockCount
	} else if err != mongo.ErrNoDocuments {
		log.Println("UpdateQuantity FindOne error:", err)
	}

	c := h.Carts.Get(SessionID(w, r))
	if err := c.UpdateQuantity(productID, payload.Quantity, availableStock); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cartState(c))
}

// RemoveItem deletes a line; removing an unknown id is a no-op.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c := h.Carts.Get(SessionID(w, r))
	c.RemoveItem(ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, cartState(c))
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c := h.Carts.Get(SessionID(w, r))
	c.Clear()
	utils.RespondWithJSON(w, http.StatusOK, cartState(c))
}
