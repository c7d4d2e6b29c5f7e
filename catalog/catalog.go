package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mvs/db"
	"mvs/models"
	"mvs/rdx"
	"mvs/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const listCacheKey = "products:all"

// GetProducts returns the whole catalog, served from the Redis cache
// when warm.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, err := rdx.RdxGet(listCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Could not retrieve products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		http.Error(w, "Error reading product data", http.StatusInternalServerError)
		return
	}
	if len(products) == 0 {
		products = []models.Product{}
	}

	if data, err := json.Marshal(products); err == nil {
		if err := rdx.SetWithExpiry(listCacheKey, string(data), 5*time.Minute); err != nil {
			log.Printf("Failed to cache product list: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

func invalidateListCache() {
	if _, err := rdx.RdxDel(listCacheKey); err != nil {
		log.Printf("Cache deletion failed for product list: %v", err)
	}
}

func validateProduct(p models.Product) string {
	if len(p.Name) == 0 || len(p.Name) > 100 {
		return "Name must be between 1 and 100 characters."
	}
	if p.Category != models.CategoryLiveFish && p.Category != models.CategorySupplies {
		return "Category must be 'Live Fish' or 'Supplies'."
	}
	if p.Price < 0 {
		return "Price must be a non-negative integer."
	}
	if p.Weight <= 0 {
		return "Weight must be a positive number of grams."
	}
	if p.StockCount < 0 {
		return "Stock must be a non-negative integer."
	}
	return ""
}

// CreateProduct adds a catalog entry. Admin only.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if msg := validateProduct(product); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	product.ProductID = "p-" + uuid.NewString()

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Product creation failed", http.StatusInternalServerError)
		return
	}

	invalidateListCache()
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// productPatch carries the optional fields of a partial update.
type productPatch struct {
	Name        *string          `json:"name"`
	Category    *models.Category `json:"category"`
	Price       *int             `json:"price"`
	Weight      *int             `json:"weight"`
	StockCount  *int             `json:"stockCount"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
}

// UpdateProduct applies a partial update to one product. Updating an
// unknown id is NotFound. Admin only.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var patch productPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if patch.Name != nil {
		if len(*patch.Name) == 0 || len(*patch.Name) > 100 {
			http.Error(w, "Name must be between 1 and 100 characters.", http.StatusBadRequest)
			return
		}
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		if *patch.Category != models.CategoryLiveFish && *patch.Category != models.CategorySupplies {
			http.Error(w, "Category must be 'Live Fish' or 'Supplies'.", http.StatusBadRequest)
			return
		}
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			http.Error(w, "Price must be a non-negative integer.", http.StatusBadRequest)
			return
		}
		set["price"] = *patch.Price
	}
	if patch.Weight != nil {
		if *patch.Weight <= 0 {
			http.Error(w, "Weight must be a positive number of grams.", http.StatusBadRequest)
			return
		}
		set["weight"] = *patch.Weight
	}
	if patch.StockCount != nil {
		if *patch.StockCount < 0 {
			http.Error(w, "Stock must be a non-negative integer.", http.StatusBadRequest)
			return
		}
		set["stockCount"] = *patch.StockCount
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	res, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"productId": ps.ByName("productid")},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Println("UpdateProduct error:", err)
		http.Error(w, "Product update failed", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DeleteProduct removes a catalog entry. Deleting an unknown id is
// NotFound. Admin only.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productId": ps.ByName("productid")})
	if err != nil {
		log.Println("DeleteProduct error:", err)
		http.Error(w, "Product deletion failed", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
