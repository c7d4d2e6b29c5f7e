package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"mvs/cart"
	"mvs/db"
	"mvs/globals"
	"mvs/models"
	"mvs/mq"
	"mvs/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler wires checkout and the admin order views together.
type Handler struct {
	Carts     *cart.Registry
	Assembler *Assembler
}

func NewHandler(carts *cart.Registry) *Handler {
	return &Handler{Carts: carts, Assembler: NewAssembler()}
}

// Checkout assembles the session cart into an order, records it,
// clears the cart and returns the WhatsApp handoff payload.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var details models.ShippingDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		log.Println("Checkout decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	c := h.Carts.Get(cart.SessionID(w, r))

	order, err := h.Assembler.Assemble(c.Lines(), details)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Order assembly failed", http.StatusInternalServerError)
		return
	}

	// append-only order log; the store owns durability from here
	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		log.Println("Checkout InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	mq.Emit("order-created", models.Index{
		EntityType: "order",
		Method:     "POST",
		EntityId:   order.OrderID,
	})

	c.Clear()

	message := DispatchMessage(order)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"order":       order,
		"message":     message,
		"whatsappUrl": WhatsAppURL(globals.StoreWhatsApp, message),
	})
}

// GetOrders lists recorded orders, newest first. Admin only.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrdersCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetOrder returns a single order by id. Admin only.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("orderid")}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not retrieve order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateStatus moves an order along PENDING_WHATSAPP → CONFIRMED →
// SHIPPED once payment is coordinated out-of-band. Admin only.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Status != models.StatusConfirmed && payload.Status != models.StatusShipped {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	res, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"orderId": ps.ByName("orderid")},
		bson.M{"$set": bson.M{"status": payload.Status}},
	)
	if err != nil {
		log.Println("UpdateStatus error:", err)
		http.Error(w, "Could not update order", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	log.Printf("Order %s marked %s by %s", ps.ByName("orderid"), payload.Status, utils.GetUserIDFromRequest(r))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}
