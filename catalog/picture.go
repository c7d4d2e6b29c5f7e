package catalog

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"mvs/db"
	"mvs/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var productUploadPath = "./static/productpic"

// UploadProductImage stores the product photo and a 150px-wide
// thumbnail next to it, then points the product at the new file.
// Admin only.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving image file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	fileExtension := ""
	switch mimeType {
	case "image/jpeg":
		fileExtension = ".jpg"
	case "image/webp":
		fileExtension = ".webp"
	case "image/png":
		fileExtension = ".png"
	default:
		http.Error(w, "Unsupported image type. Only JPG, PNG and WEBP are allowed.", http.StatusUnsupportedMediaType)
		return
	}

	if err := os.MkdirAll(productUploadPath, 0755); err != nil {
		http.Error(w, "Error saving image", http.StatusInternalServerError)
		return
	}

	savePath := productUploadPath + "/" + productID + fileExtension
	out, err := os.Create(savePath)
	if err != nil {
		http.Error(w, "Error saving image: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		http.Error(w, "Error saving image: "+err.Error(), http.StatusInternalServerError)
		return
	}

	createThumb(productID, savePath)

	imageName := productID + fileExtension
	res, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"productId": productID},
		bson.M{"$set": bson.M{"image": imageName}},
	)
	if err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Product update failed", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache()
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"image": imageName})
}

func createThumb(productID, srcPath string) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		log.Printf("Thumbnail open failed for %s: %v", productID, err)
		return
	}
	thumb := imaging.Resize(img, 150, 0, imaging.Lanczos) // maintain aspect ratio
	thumbPath := productUploadPath + "/" + productID + "_thumb.jpg"
	if err := imaging.Save(thumb, thumbPath); err != nil {
		log.Printf("Thumbnail save failed for %s: %v", productID, err)
	}
}
