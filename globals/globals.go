package globals

import (
	"context"
	"os"
)

var (
	JwtSecret = []byte(envOr("JWT_SECRET", "mvs_dev_secret"))

	// AdminUsername is the single fixed owner account of the shop.
	AdminUsername = "admin"

	// StoreWhatsApp is the destination number for order handoff, digits only.
	StoreWhatsApp = envOr("STORE_WHATSAPP", "916302382280")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
