package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func LogoutUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logoutUserHandler(w, r)
}
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	changePasswordHandler(w, r)
}
func Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionHandler(w, r)
}
