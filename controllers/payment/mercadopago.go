// Package paymentControllers integrates the Mercado Pago checkout-preference
// API. A preference never reports a final payment state, so "paid" is always
// derived from the local pix_payments row. There is no provider webhook
// contract defined for this store; reconciliation happens on status polling.
package paymentControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lucasmoraes-dev/gamestore-api/config"
)

var (
	// ErrPreferenceNotFound means the provider does not know the identifier.
	ErrPreferenceNotFound = errors.New("preferência não encontrada no Mercado Pago")
	// ErrProviderTimeout distinguishes a slow provider from a failing one.
	ErrProviderTimeout = errors.New("tempo esgotado ao chamar o Mercado Pago")
)

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		token:   cfg.MercadoPagoToken,
		baseURL: cfg.MercadoPagoAPIURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (cl *Client) Configured() bool {
	return cl.token != ""
}

// Preference is the subset of the provider's preference object we consume.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type providerError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// CreatePreference registers a payment intent with one line item and returns
// the provider's identifier plus the hosted checkout link.
func (cl *Client) CreatePreference(ctx context.Context, amount float64, description string, userID *uint, frontendURL string) (*Preference, error) {
	payer := "teste@mercadopago.com"
	metaUser := "anonimo"
	if userID != nil {
		metaUser = fmt.Sprintf("%d", *userID)
	}

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"id":         "1",
				"title":      description,
				"quantity":   1,
				"unit_price": amount,
			},
		},
		"back_urls": map[string]string{
			"success": frontendURL + "/checkout.html?status=success",
			"failure": frontendURL + "/checkout.html?status=failure",
			"pending": frontendURL + "/checkout.html?status=pending",
		},
		"payer": map[string]string{
			"email": payer,
		},
		"metadata": map[string]string{
			"usuarioId": metaUser,
			"loja":      "GameStore",
		},
		"payment_methods": map[string]interface{}{
			"excluded_payment_methods": []string{},
			"installments":             1,
		},
	}

	body, err := cl.do(ctx, http.MethodPost, "/checkout/preferences", payload)
	if err != nil {
		return nil, err
	}

	var pref Preference
	if err := json.Unmarshal(body, &pref); err != nil {
		return nil, fmt.Errorf("resposta inválida do Mercado Pago: %w", err)
	}
	if pref.ID == "" {
		return nil, errors.New("Mercado Pago retornou preferência sem ID")
	}
	return &pref, nil
}

// GetPreference fetches a preference by its provider identifier.
func (cl *Client) GetPreference(ctx context.Context, id string) (*Preference, error) {
	body, err := cl.do(ctx, http.MethodGet, "/checkout/preferences/"+id, nil)
	if err != nil {
		return nil, err
	}
	var pref Preference
	if err := json.Unmarshal(body, &pref); err != nil {
		return nil, fmt.Errorf("resposta inválida do Mercado Pago: %w", err)
	}
	return &pref, nil
}

func (cl *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, cl.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cl.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := cl.http.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrProviderTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrProviderTimeout
		}
		return nil, fmt.Errorf("falha ao chamar o Mercado Pago: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPreferenceNotFound
	}
	if resp.StatusCode >= 400 {
		var pe providerError
		if json.Unmarshal(body, &pe) == nil && pe.Message != "" {
			return nil, fmt.Errorf("erro do Mercado Pago (%d): %s", resp.StatusCode, pe.Message)
		}
		return nil, fmt.Errorf("erro do Mercado Pago (%d)", resp.StatusCode)
	}
	return body, nil
}
