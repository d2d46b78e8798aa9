package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"restaurant-ordering/cart-svc/service"
)

// Every cart surface (header badge, modal, mobile menu) talks to the same
// session cart, identified by the X-Session-ID header. Clients that send no
// header share the "default" cart, matching the single-browser model of the
// original frontend.
const defaultSession = "default"

type Handler struct {
	Carts service.CartServiceInterface
}

func NewHandler(carts service.CartServiceInterface) *Handler {
	return &Handler{Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/items/{itemId}/increase", h.increaseQuantity).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}/decrease", h.decreaseQuantity).Methods("POST")
	r.HandleFunc("/api/cart/open", h.openCart).Methods("POST")
	r.HandleFunc("/api/cart/close", h.closeCart).Methods("POST")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/cart/checkout/{reference}/qrcode", h.getCheckoutQRCode).Methods("GET")
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	return defaultSession
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.Snapshot(sessionID(r)))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var payload addItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, addOns := normalizeProduct(payload)
	writeJSON(w, http.StatusCreated, h.Carts.AddItem(sessionID(r), input, addOns))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	writeJSON(w, http.StatusOK, h.Carts.RemoveItem(sessionID(r), itemID))
}

func (h *Handler) increaseQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	writeJSON(w, http.StatusOK, h.Carts.IncreaseQuantity(sessionID(r), itemID))
}

func (h *Handler) decreaseQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]
	writeJSON(w, http.StatusOK, h.Carts.DecreaseQuantity(sessionID(r), itemID))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.ClearCart(sessionID(r)))
}

func (h *Handler) openCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.OpenCart(sessionID(r)))
}

func (h *Handler) closeCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.CloseCart(sessionID(r)))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	confirmation, err := h.Carts.Checkout(sessionID(r))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, confirmation)
}

func (h *Handler) getCheckoutQRCode(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	qr, err := h.Carts.CheckoutQRCode(reference)
	if err != nil {
		if errors.Is(err, service.ErrUnknownReference) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
