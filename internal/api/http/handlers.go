package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"syncpos/internal/domain"
	"syncpos/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Cart      service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Menu      service.MenuServiceInterface
	Saved     service.SavedOrderServiceInterface
	Inventory service.InventoryServiceInterface
	Settings  service.SettingsServiceInterface
	Auth      service.AuthServiceInterface
	Reports   service.ReportsServiceInterface
}

func NewHandler(cart service.CartServiceInterface, checkout service.CheckoutServiceInterface,
	menu service.MenuServiceInterface, saved service.SavedOrderServiceInterface,
	inventory service.InventoryServiceInterface, settings service.SettingsServiceInterface,
	auth service.AuthServiceInterface, reports service.ReportsServiceInterface) *Handler {
	return &Handler{
		Cart:      cart,
		Checkout:  checkout,
		Menu:      menu,
		Saved:     saved,
		Inventory: inventory,
		Settings:  settings,
		Auth:      auth,
		Reports:   reports,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/session", h.session).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/customized", h.addCustomizedCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{entryId}", h.setCartItemQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{entryId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/discount", h.setCartDiscount).Methods("POST")
	r.HandleFunc("/api/cart/save", h.saveCart).Methods("POST")
	r.HandleFunc("/api/cart/kot", h.getKOT).Methods("GET")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/pending-orders", h.getPendingOrders).Methods("GET")
	r.HandleFunc("/api/pending-orders/{id}", h.deletePendingOrder).Methods("DELETE")
	r.HandleFunc("/api/pending-orders/{id}/resume", h.resumePendingOrder).Methods("POST")

	r.HandleFunc("/api/inventory", h.getInventory).Methods("GET")
	r.HandleFunc("/api/inventory", h.createInventoryItem).Methods("POST")
	r.HandleFunc("/api/inventory/low-stock", h.getLowStock).Methods("GET")
	r.HandleFunc("/api/inventory/{id}", h.updateInventoryItem).Methods("PUT")
	r.HandleFunc("/api/inventory/{id}", h.deleteInventoryItem).Methods("DELETE")

	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/settings", h.updateSettings).Methods("PUT")

	r.HandleFunc("/api/reports/summary", h.getReportSummary).Methods("GET")
	r.HandleFunc("/api/reports/top-items", h.getTopItems).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// --- session ---

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.Current(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "No active session", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- menu ---

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Menu.Update(r.Context(), &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- cart ---

type cartView struct {
	Items  []domain.LineItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
	CGST   decimal.Decimal   `json:"cgst"`
	SGST   decimal.Decimal   `json:"sgst"`
}

func (h *Handler) cartResponse() cartView {
	totals := h.Cart.Totals().Rounded()
	cgst, sgst := totals.TaxSplit()
	return cartView{
		Items:  h.Cart.Lines(),
		Totals: totals,
		CGST:   cgst.Round(2),
		SGST:   sgst.Round(2),
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.Clear(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MenuItemID string `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cart.AddPlainItem(r.Context(), req.MenuItemID); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) addCustomizedCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MenuItemID          string                       `json:"menu_item_id"`
		Customizations      domain.SelectedCustomization `json:"customizations"`
		Quantity            int                          `json:"quantity"`
		SpecialInstructions string                       `json:"special_instructions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	err := h.Cart.AddCustomizedItem(r.Context(), req.MenuItemID, req.Customizations, req.Quantity, req.SpecialInstructions)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cart.SetQuantity(r.Context(), mux.Vars(r)["entryId"], req.Quantity); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.RemoveLine(r.Context(), mux.Vars(r)["entryId"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h *Handler) setCartDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DiscountPercent json.RawMessage `json:"discount_percent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Non-numeric input is treated as zero, matching the discount field's
	// forgiving behavior in the UI.
	if err := h.Cart.SetDiscountPercent(r.Context(), parseDiscount(req.DiscountPercent)); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func parseDiscount(raw json.RawMessage) decimal.Decimal {
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}

func (h *Handler) saveCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Table     string `json:"table"`
		TableName string `json:"table_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	saved, err := h.Saved.Save(r.Context(), req.Table, req.TableName)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getKOT(w http.ResponseWriter, r *http.Request) {
	lines := h.Cart.Lines()
	if len(lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}
	table := r.URL.Query().Get("table")
	now := time.Now()
	ticket := service.RenderKOT("KOT"+now.Format("150405"), table, now, lines)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(ticket))
}

// --- checkout / orders ---

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Customer      domain.Customer      `json:"customer"`
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
		Table         string               `json:"table"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.Checkout(r.Context(), req.Customer, req.PaymentMethod, req.Table)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Checkout.ListOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Checkout.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Checkout.ReceiptQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if len(png) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// --- pending orders ---

func (h *Handler) getPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Saved.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) deletePendingOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Saved.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resumePendingOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Saved.Resume(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse())
}

// --- inventory ---

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Inventory.Create(r.Context(), &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item domain.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Inventory.Update(r.Context(), &item); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Inventory.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Inventory.LowStock(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// --- settings ---

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Settings.Update(r.Context(), settings); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// --- reports ---

func (h *Handler) getReportSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "today"
	}
	summary, err := h.Reports.Summary(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "all"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.Reports.TopItems(r.Context(), period, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": ve.Fields})
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrCheckoutInProgress):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrUnknownOption):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
