package invoice

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"mvs/db"
	"mvs/globals"
	"mvs/models"
	"mvs/orders"
	"mvs/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintInvoice renders an order as a PDF with a QR code that reopens
// the WhatsApp conversation for it. Admin only.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := ps.ByName("orderid")

	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not retrieve order", http.StatusInternalServerError)
		return
	}

	buf, err := Render(order)
	if err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+orderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf)
}

// Render lays the order out on an A4 page. Separate from the handler
// so it can be exercised without HTTP or Mongo.
func Render(order models.Order) ([]byte, error) {
	waURL := orders.WhatsAppURL(globals.StoreWhatsApp, orders.DispatchMessage(order))
	qrPNG, err := qrcode.Encode(waURL, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	d := order.ShippingDetails

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "MVS Aquarium - Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Order ID: %s", order.OrderID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s (%s)", d.CustomerName, d.Phone))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Ship to: %s, %s, %s, %s", d.Address, d.City, d.State, d.Pincode))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Items")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, line := range order.Lines {
		pdf.Cell(0, 8, fmt.Sprintf("%s  x%d  @ Rs.%d", line.Name, line.Quantity, line.Price))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.Cell(0, 8, "Subtotal: Rs."+trimINR(order.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Shipping: Rs."+trimINR(order.ShippingCost))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Total: Rs."+trimINR(order.Total))

	// QR opens the WhatsApp thread for this order
	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// trimINR drops the rupee sign: the core PDF fonts cannot render it.
func trimINR(amount int) string {
	s := utils.FormatINR(amount)
	if len(s) > 0 && s[0] != '-' {
		return s[len("₹"):]
	}
	return "-" + s[1+len("₹"):]
}
