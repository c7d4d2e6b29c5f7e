package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"mvs/db"
	"mvs/globals"
	"mvs/middleware"
	"mvs/models"
	"mvs/rdx"
	"mvs/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL      = 12 * time.Hour
	defaultPassword = "admin" // bootstrap only, changed via the admin panel
	ownerUserID     = "owner"
)

// EnsureOwner bootstraps the single admin account with the default
// password when the users collection is empty. Called once at startup.
func EnsureOwner() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := db.UserCollection.FindOne(ctx, bson.M{"username": globals.AdminUsername}).Err()
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Owner lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash default password: %v", err)
		return
	}

	owner := models.Owner{
		UserID:   ownerUserID,
		Username: globals.AdminUsername,
		Password: string(hash),
	}
	if _, err := db.UserCollection.InsertOne(ctx, owner); err != nil {
		log.Printf("Failed to bootstrap owner account: %v", err)
		return
	}
	log.Println("Bootstrapped owner account with default password")
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// single fixed username
	if strings.ToLower(input.Username) != globals.AdminUsername {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	var owner models.Owner
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": globals.AdminUsername}).Decode(&owner)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: owner.Username,
		UserID:   owner.UserID,
		Role:     []string{"owner"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": owner.UserID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)
	if err != nil {
		log.Printf("Failed to record last login: %v", err)
	}

	if err := rdx.RdxHset("tokki", owner.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":  tokenString,
		"userid": owner.UserID,
	}, "Login successful", nil)
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Logged out successfully", nil)
}

// changePasswordHandler is a compare-and-set: the current password
// must verify before the new hash replaces it.
func changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if len(input.NewPassword) < 4 {
		http.Error(w, "New password too short", http.StatusBadRequest)
		return
	}

	var owner models.Owner
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": globals.AdminUsername}).Decode(&owner)
	if err != nil {
		http.Error(w, "Owner account missing", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(owner.Password), []byte(input.CurrentPassword)); err != nil {
		http.Error(w, "Current password is incorrect", http.StatusUnauthorized)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": owner.UserID},
		bson.M{"$set": bson.M{"password": string(hash)}},
	)
	if err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password changed", nil)
}

// sessionHandler reports whether the presented token is still valid;
// the Authenticate middleware has already vetted it by the time this
// runs.
func sessionHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"authenticated": true,
		"username":      claims.Username,
	})
}
