package contactControllers

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

	"github.com/lucasmoraes-dev/gamestore-api/migrations"
	"github.com/lucasmoraes-dev/gamestore-api/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	r := gin.New()
	r.POST("/api/contato", SubmitMessage(db))
	r.GET("/api/admin/contato", GetMessages(db))
	return r, db
}

func submit(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/contato", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitMessage(t *testing.T) {
	r, db := newTestRouter(t)

	w := submit(t, r, gin.H{
		"nome":     "Ana Silva",
		"email":    "ana@gmail.com",
		"mensagem": "Gostaria de saber sobre o prazo de entrega.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var msg models.ContactMessage
	if err := db.First(&msg).Error; err != nil {
		t.Fatalf("message not persisted: %v", err)
	}
	if msg.Email != "ana@gmail.com" {
		t.Fatalf("unexpected email %q", msg.Email)
	}
}

func TestSubmitMessageLengthBounds(t *testing.T) {
	r, db := newTestRouter(t)

	cases := map[string]string{
		"curta demais": "Oi",
		"longa demais": strings.Repeat("a", 1001),
	}
	for name, mensagem := range cases {
		w := submit(t, r, gin.H{
			"nome":     "Ana Silva",
			"email":    "ana@gmail.com",
			"mensagem": mensagem,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, w.Code)
		}
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows persisted, got %d", count)
	}
}

func TestSubmitMessageRejectsBadEmailAndName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := submit(t, r, gin.H{
		"nome":     "Ana Silva",
		"email":    "ana@dominio-estranho.xyz",
		"mensagem": "Mensagem com tamanho suficiente para passar.",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("disallowed domain: expected 400, got %d", w.Code)
	}

	w = submit(t, r, gin.H{
		"nome":     "A1",
		"email":    "ana@gmail.com",
		"mensagem": "Mensagem com tamanho suficiente para passar.",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid name: expected 400, got %d", w.Code)
	}
}

func TestGetMessagesNewestFirst(t *testing.T) {
	r, db := newTestRouter(t)

	for _, m := range []string{"Primeira mensagem de contato.", "Segunda mensagem de contato."} {
		if err := db.Create(&models.ContactMessage{Name: "Ana Silva", Email: "ana@gmail.com", Message: m}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/contato", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	msgs, _ := resp["mensagens"].([]interface{})
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
}
