package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_facil/internal/domain/entities"
	"oficina_facil/internal/usecase/interfaces"
)

var (
	ErrPagamentoNaoEncontrado         = errors.New("pagamento não encontrado")
	ErrInvalidPagamentoOSID           = errors.New("invalid os_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOSNaoFinalizada                = errors.New("ordem de serviço não finalizada")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const pagamentosStoreKey = "oficinafacil_pagamentos"

// IPagamentoUseCase encapsulates the "charge a finished service order" behavior.
//
// Requested behavior:
//   - Charge the order's total via Mercado Pago and mark the order as paid.

type IPagamentoUseCase interface {
	CreateAndApprove(ctx context.Context, osID string, mpPayload json.RawMessage) (entities.Pagamento, error)
	GetByID(ctx context.Context, id string) (entities.Pagamento, error)
	ListByOSID(ctx context.Context, osID string) ([]entities.Pagamento, error)
}

type PagamentoUseCase struct {
	oficina IOficinaUseCase
	gateway interfaces.IPaymentGateway
	store   interfaces.ILocalStore
}

var _ IPagamentoUseCase = (*PagamentoUseCase)(nil)

func NewPagamentoUseCase(oficina IOficinaUseCase, gateway interfaces.IPaymentGateway, store interfaces.ILocalStore) *PagamentoUseCase {
	return &PagamentoUseCase{oficina: oficina, gateway: gateway, store: store}
}

func (u *PagamentoUseCase) CreateAndApprove(ctx context.Context, osID string, mpPayload json.RawMessage) (entities.Pagamento, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_os_id=%q payload_len=%d", osID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	osID = strings.TrimSpace(osID)
	if osID == "" {
		log.Printf("[payment][usecase] invalid os_id (empty)")
		return entities.Pagamento{}, ErrInvalidPagamentoOSID
	}
	if len(mpPayload) == 0 {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (empty) os_id=%s", osID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
	}
	if !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (not-json) os_id=%s", osID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured os_id=%s", osID)
		return entities.Pagamento{}, errors.New("payment gateway not configured")
	}
	if u.oficina == nil {
		log.Printf("[payment][usecase] workshop usecase not configured os_id=%s", osID)
		return entities.Pagamento{}, errors.New("workshop usecase not configured")
	}

	log.Printf("[payment][usecase] loading order os_id=%s", osID)
	ordem, ok := u.findOrdem(ctx, osID)
	if !ok {
		log.Printf("[payment][usecase] order not found os_id=%s", osID)
		return entities.Pagamento{}, interfaces.ErrOSNaoEncontrada
	}
	if !mockMode && ordem.Status != entities.OSStatusFinalizada {
		log.Printf("[payment][usecase] order not finished os_id=%s status=%s", osID, ordem.Status)
		return entities.Pagamento{}, ErrOSNaoFinalizada
	}
	log.Printf("[payment][usecase] order loaded os_id=%s status=%s total=%.2f", osID, ordem.Status, ordem.ValorTotal)

	// Ensure basic linkage with the order when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id os_id=%s", osID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer os_id=%s", osID)
			return entities.Pagamento{}, ErrInvalidMPPayload
		}

		log.Printf("[payment][usecase] enriching payload os_id=%s", osID)
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = osID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Ordem de Serviço %s", osID)
		}

		// The source of truth for amount is the order total in the spreadsheet.
		reqMap["transaction_amount"] = ordem.ValorTotal
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
			log.Printf("[payment][usecase] payload enriched os_id=%s payload_len=%d", osID, len(mpPayload))
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed os_id=%s err=%v", osID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)
	var err error

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway os_id=%s", osID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = osID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = ordem.ValorTotal
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.Pagamento{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[payment][usecase] calling payment gateway os_id=%s", osID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed os_id=%s err=%v", osID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.Pagamento{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.Pagamento{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.Pagamento{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Pagamento{}, ErrPaymentGatewayBadRequest
			}
			return entities.Pagamento{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success os_id=%s provider_payment_id=%s provider_status=%s", osID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed os_id=%s err=%v", osID, err)
	}

	now := time.Now().UTC()
	p := entities.Pagamento{
		ID:           providerPaymentID,
		OSID:         osID,
		Date:         now,
		Status:       entities.PagamentoStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	if _, err := u.oficina.AtualizarStatusOS(ctx, osID, entities.OSStatusPaga); err != nil {
		// The charge went through; the spreadsheet update will be retried by
		// the pending queue, so the payment record is still persisted.
		log.Printf("[payment][usecase] order status update failed os_id=%s payment_id=%s err=%v", osID, p.ID, err)
	}

	if err := u.persist(p); err != nil {
		log.Printf("[payment][usecase] payment record persist failed os_id=%s payment_id=%s err=%v", osID, p.ID, err)
		return entities.Pagamento{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success os_id=%s payment_id=%s status=%s", osID, p.ID, p.Status)
	return p, nil
}

func (u *PagamentoUseCase) GetByID(ctx context.Context, id string) (entities.Pagamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Pagamento{}, errors.New("invalid payment id")
	}

	for _, p := range u.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Pagamento{}, ErrPagamentoNaoEncontrado
}

func (u *PagamentoUseCase) ListByOSID(ctx context.Context, osID string) ([]entities.Pagamento, error) {
	osID = strings.TrimSpace(osID)
	if osID == "" {
		return nil, ErrInvalidPagamentoOSID
	}

	out := []entities.Pagamento{}
	for _, p := range u.load() {
		if p.OSID == osID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *PagamentoUseCase) findOrdem(ctx context.Context, osID string) (entities.OrdemServico, bool) {
	for _, os := range u.oficina.ObterOrdensServico(ctx, "") {
		if os.ID == osID {
			return os, true
		}
	}
	return entities.OrdemServico{}, false
}

func (u *PagamentoUseCase) load() []entities.Pagamento {
	if u.store == nil {
		return nil
	}
	b, ok := u.store.Get(pagamentosStoreKey)
	if !ok {
		return nil
	}
	var list []entities.Pagamento
	if err := json.Unmarshal(b, &list); err != nil {
		log.Printf("[payment][usecase] payment records corrupted; resetting err=%v", err)
		return nil
	}
	return list
}

func (u *PagamentoUseCase) persist(p entities.Pagamento) error {
	if u.store == nil {
		return nil
	}
	list := append(u.load(), p)
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return u.store.Put(pagamentosStoreKey, b)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
