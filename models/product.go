package models

// Category of a catalog product.
type Category string

const (
	CategoryLiveFish Category = "Live Fish"
	CategorySupplies Category = "Supplies"
)

// Product is a catalog entry. Price is whole rupees, Weight is grams.
type Product struct {
	ProductID   string   `json:"productId" bson:"productId"`
	Name        string   `json:"name" bson:"name"`
	Category    Category `json:"category" bson:"category"`
	Price       int      `json:"price" bson:"price"`
	Weight      int      `json:"weight" bson:"weight"`
	StockCount  int      `json:"stockCount" bson:"stockCount"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
}
