package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucasmoraes-dev/gamestore-api/config"
	"github.com/lucasmoraes-dev/gamestore-api/migrations"
	"github.com/lucasmoraes-dev/gamestore-api/models"
)

// fakeMercadoPago answers the two preference endpoints the client uses and
// remembers every preference it created.
func fakeMercadoPago(t *testing.T) *httptest.Server {
	t.Helper()
	created := map[string]bool{}
	var mux http.ServeMux
	mux.HandleFunc("/checkout/preferences", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		id := fmt.Sprintf("pref_%d", len(created)+1)
		created[id] = true
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"init_point":"https://mp.example/checkout/%s"}`, id, id)
	})
	mux.HandleFunc("/checkout/preferences/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/checkout/preferences/")
		if !created[id] {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"preference not found","status":404}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"init_point":"https://mp.example/checkout/%s"}`, id, id)
	})
	srv := httptest.NewServer(&mux)
	t.Cleanup(srv.Close)
	return srv
}

func newPixRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	srv := fakeMercadoPago(t)
	cfg := config.Config{
		MercadoPagoToken:  "test-token",
		MercadoPagoAPIURL: srv.URL,
		FrontendURL:       "http://localhost:3000",
		PixKey:            "chavepix@gamestore.com.br",
	}
	client := NewClient(cfg)

	r := gin.New()
	r.POST("/api/pagamento/pix", CreatePix(db, cfg, client))
	r.GET("/api/pagamento/pix/:id", GetPixStatus(db, client))
	r.POST("/api/pagamento/pix/simular/:id", SimulatePixConfirmation(db))
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	resp := map[string]interface{}{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func TestCreatePixGeneratesQRCode(t *testing.T) {
	r, db := newPixRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/pagamento/pix", gin.H{
		"valor":     99.90,
		"descricao": "Compra de jogos",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if resp["sucesso"] != true {
		t.Fatalf("expected sucesso true, got %v", resp["sucesso"])
	}
	id, _ := resp["pixPaymentId"].(string)
	if id == "" {
		t.Fatal("expected non-empty pixPaymentId")
	}
	qr, _ := resp["qrCode"].(string)
	if !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Fatalf("expected PNG data URL, got %q", qr)
	}
	link, _ := resp["linkCheckout"].(string)
	if !strings.Contains(link, id) {
		t.Fatalf("expected checkout link for %s, got %q", id, link)
	}

	var payment models.PixPayment
	if err := db.Where("pix_payment_id = ?", id).First(&payment).Error; err != nil {
		t.Fatalf("payment row not persisted: %v", err)
	}
	if payment.Status != models.PixStatusPending {
		t.Fatalf("expected status pendente, got %s", payment.Status)
	}
}

func TestCreatePixRejectsInvalidAmount(t *testing.T) {
	r, _ := newPixRouter(t)

	for _, valor := range []float64{0, -10} {
		w, resp := doJSON(t, r, http.MethodPost, "/api/pagamento/pix", gin.H{"valor": valor})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("valor %v: expected 400, got %d", valor, w.Code)
		}
		if resp["detalhes"] != "Valor deve ser maior que 0" {
			t.Fatalf("valor %v: unexpected detalhes %v", valor, resp["detalhes"])
		}
	}
}

func TestCreatePixUnconfiguredProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	cfg := config.Config{} // no token
	r := gin.New()
	r.POST("/api/pagamento/pix", CreatePix(db, cfg, NewClient(cfg)))

	w, resp := doJSON(t, r, http.MethodPost, "/api/pagamento/pix", gin.H{"valor": 10.0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if resp["erro"] != "Mercado Pago não configurado" {
		t.Fatalf("unexpected erro %v", resp["erro"])
	}
}

func TestPixStatusLifecycle(t *testing.T) {
	r, _ := newPixRouter(t)

	_, created := doJSON(t, r, http.MethodPost, "/api/pagamento/pix", gin.H{"valor": 59.90})
	id := created["pixPaymentId"].(string)

	// Freshly created payment is pending.
	w, resp := doJSON(t, r, http.MethodGet, "/api/pagamento/pix/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["pago"] != false || resp["status"] != "pendente" {
		t.Fatalf("expected pendente/unpaid, got %v", resp)
	}

	// Simulated confirmation flips it.
	w, resp = doJSON(t, r, http.MethodPost, "/api/pagamento/pix/simular/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("simulate: expected 200, got %d", w.Code)
	}
	if resp["status"] != "confirmado" {
		t.Fatalf("simulate: expected confirmado, got %v", resp["status"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/api/pagamento/pix/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp["pago"] != true || resp["status"] != "confirmado" {
		t.Fatalf("expected confirmado/paid, got %v", resp)
	}

	// Re-simulating stays confirmed.
	w, _ = doJSON(t, r, http.MethodPost, "/api/pagamento/pix/simular/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("re-simulate: expected 200, got %d", w.Code)
	}
	_, resp = doJSON(t, r, http.MethodGet, "/api/pagamento/pix/"+id, nil)
	if resp["pago"] != true {
		t.Fatalf("expected payment still paid, got %v", resp)
	}
}

// Without provider credentials the status endpoint still answers from the
// local row, which is the only source of truth for "pago" anyway.
func TestPixStatusWithoutProviderUsesLocalRow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	if err := db.Create(&models.PixPayment{
		PixPaymentID: "pref_local",
		Amount:       39.90,
		Status:       models.PixStatusConfirmed,
	}).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	cfg := config.Config{} // no token
	r := gin.New()
	r.GET("/api/pagamento/pix/:id", GetPixStatus(db, NewClient(cfg)))

	w, resp := doJSON(t, r, http.MethodGet, "/api/pagamento/pix/pref_local", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp["pago"] != true || resp["status"] != "confirmado" {
		t.Fatalf("expected confirmado/paid, got %v", resp)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/pagamento/pix/pref_desconhecido", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", w.Code)
	}
}

func TestPixStatusUnknownPayment(t *testing.T) {
	r, _ := newPixRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/pagamento/pix/pref_inexistente", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if resp["erro"] != "Pagamento não encontrado" {
		t.Fatalf("unexpected erro %v", resp["erro"])
	}
	if resp["pixPaymentId"] != "pref_inexistente" {
		t.Fatalf("expected echoed id, got %v", resp["pixPaymentId"])
	}
}

func TestSimulateConfirmationMarksLinkedOrderPaid(t *testing.T) {
	r, db := newPixRouter(t)

	user := models.User{Email: "user@gmail.com", Name: "Ana Silva", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	order := models.Order{UserID: user.ID, OrderRef: "20240101000000-x", Total: 59.90, Status: models.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	_, created := doJSON(t, r, http.MethodPost, "/api/pagamento/pix", gin.H{
		"valor":     59.90,
		"usuarioId": user.ID,
		"pedidoId":  order.ID,
	})
	id := created["pixPaymentId"].(string)

	doJSON(t, r, http.MethodPost, "/api/pagamento/pix/simular/"+id, nil)

	var after models.Order
	if err := db.First(&after, order.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if after.Status != models.OrderStatusPaid {
		t.Fatalf("expected order pago, got %s", after.Status)
	}
}
