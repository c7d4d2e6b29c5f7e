package catalog

import (
	"context"
	"log"
	"time"

	"mvs/db"
	"mvs/models"

	"go.mongodb.org/mongo-driver/bson"
)

var initialProducts = []models.Product{
	// Live Fish
	{
		ProductID:   "f1",
		Name:        "Milk White OHM Betta",
		Category:    models.CategoryLiveFish,
		Price:       120,
		Weight:      30,
		StockCount:  15,
		Image:       "https://picsum.photos/400/400?random=1",
		Description: "Elegant Milk White Over Half Moon Betta.",
	},
	{
		ProductID:   "f2",
		Name:        "Molly Pair",
		Category:    models.CategoryLiveFish,
		Price:       25,
		Weight:      40,
		StockCount:  8,
		Image:       "https://picsum.photos/400/400?random=2",
		Description: "Active and healthy Molly pair.",
	},
	{
		ProductID:   "f3",
		Name:        "Baby Flower Horn",
		Category:    models.CategoryLiveFish,
		Price:       120,
		Weight:      80,
		StockCount:  0,
		Image:       "https://picsum.photos/400/400?random=3",
		Description: "High potential baby Flower Horn.",
	},
	{
		ProductID:  "f4",
		Name:       "Guppy Trio (Exotic)",
		Category:   models.CategoryLiveFish,
		Price:      150,
		Weight:     30,
		StockCount: 50,
		Image:      "https://picsum.photos/400/400?random=4",
	},
	// Supplies
	{
		ProductID:   "s1",
		Name:        "Royal Food",
		Category:    models.CategorySupplies,
		Price:       110,
		Weight:      150,
		StockCount:  100,
		Image:       "https://picsum.photos/400/400?random=5",
		Description: "Premium nutrition pellets.",
	},
	{
		ProductID:   "s2",
		Name:        "Air Pump One Way",
		Category:    models.CategorySupplies,
		Price:       99,
		Weight:      250,
		StockCount:  20,
		Image:       "https://picsum.photos/400/400?random=6",
		Description: "Silent operation single outlet pump.",
	},
	{
		ProductID:   "s3",
		Name:        "Foxtail Plant Bunch",
		Category:    models.CategorySupplies,
		Price:       50,
		Weight:      50,
		StockCount:  5,
		Image:       "https://picsum.photos/400/400?random=7",
		Description: "Live aquatic plant, great for fry hiding.",
	},
}

// SeedProducts loads the starter catalog on an empty database.
func SeedProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.ProductsCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Seed count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	docs := make([]interface{}, 0, len(initialProducts))
	for _, p := range initialProducts {
		docs = append(docs, p)
	}
	if _, err := db.ProductsCollection.InsertMany(ctx, docs); err != nil {
		log.Printf("Seed insert failed: %v", err)
		return
	}
	log.Printf("Seeded %d catalog products", len(docs))
}
