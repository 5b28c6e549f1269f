package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/api/middleware"
	ordersvc "github.com/motoshophq/motoshop-backend/internal/orders"
	quotesvc "github.com/motoshophq/motoshop-backend/internal/quotes"
	pkgerrors "github.com/motoshophq/motoshop-backend/pkg/errors"
	"github.com/motoshophq/motoshop-backend/pkg/pagination"
)

type stubQuotesService struct {
	created *quotesvc.QuoteDTO
	pdf     []byte
	err     error

	gotOwner uuid.UUID
	gotReq   quotesvc.CreateQuoteRequest
}

func (s *stubQuotesService) Create(_ context.Context, ownerID uuid.UUID, req quotesvc.CreateQuoteRequest) (*quotesvc.QuoteDTO, error) {
	s.gotOwner = ownerID
	s.gotReq = req
	return s.created, s.err
}

func (s *stubQuotesService) Get(context.Context, uuid.UUID, uuid.UUID) (*quotesvc.QuoteDTO, error) {
	return s.created, s.err
}

func (s *stubQuotesService) List(context.Context, uuid.UUID, pagination.Params) (*quotesvc.ListResponse, error) {
	return &quotesvc.ListResponse{}, s.err
}

func (s *stubQuotesService) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

func (s *stubQuotesService) RenderPDF(context.Context, uuid.UUID, uuid.UUID) ([]byte, error) {
	return s.pdf, s.err
}

type stubConvertService struct {
	order *ordersvc.OrderDTO
	err   error
}

func (s stubConvertService) Convert(context.Context, uuid.UUID, uuid.UUID) (*ordersvc.OrderDTO, error) {
	return s.order, s.err
}

func (s stubConvertService) Get(context.Context, uuid.UUID, uuid.UUID) (*ordersvc.OrderDTO, error) {
	return s.order, s.err
}

func (s stubConvertService) List(context.Context, uuid.UUID, pagination.Params) (*ordersvc.ListResponse, error) {
	return &ordersvc.ListResponse{}, s.err
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
}

func TestQuoteCreateForwardsOwnerAndPayload(t *testing.T) {
	svc := &stubQuotesService{created: &quotesvc.QuoteDTO{ID: uuid.New(), TotalCents: 11550}}
	handler := QuoteCreate(svc, nil)

	customerID := uuid.New()
	body := []byte(`{"customer_id":"` + customerID.String() + `","items":[{"kind":"custom","description":"Chain swap","quantity":1,"unit_price_cents":10500}]}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, authedRequest(http.MethodPost, "/api/v1/quotes", body))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotOwner == uuid.Nil {
		t.Fatal("expected owner forwarded to service")
	}
	if svc.gotReq.CustomerID != customerID || len(svc.gotReq.Items) != 1 {
		t.Fatalf("unexpected request forwarded: %+v", svc.gotReq)
	}
}

func TestQuoteCreateRequiresAuthContext(t *testing.T) {
	handler := QuoteCreate(&stubQuotesService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestQuotePDFStreamsDocument(t *testing.T) {
	svc := &stubQuotesService{pdf: []byte("%PDF-1.3 body")}
	router := chi.NewRouter()
	router.Get("/quotes/{quoteId}/pdf", QuotePDF(svc, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodGet, "/quotes/"+uuid.NewString()+"/pdf", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf got %s", got)
	}
	if !strings.HasPrefix(resp.Body.String(), "%PDF-") {
		t.Fatalf("expected pdf bytes, got %q", resp.Body.String())
	}
}

func TestQuotePDFInvalidID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/quotes/{quoteId}/pdf", QuotePDF(&stubQuotesService{}, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodGet, "/quotes/not-a-uuid/pdf", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteConvertSuccess(t *testing.T) {
	order := &ordersvc.OrderDTO{ID: uuid.New(), TotalCents: 11550, CreatedAt: time.Now()}
	router := chi.NewRouter()
	router.Post("/quotes/{quoteId}/convert", QuoteConvert(stubConvertService{order: order}, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodPost, "/quotes/"+uuid.NewString()+"/convert", nil))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestQuoteConvertAlreadyConverted(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/quotes/{quoteId}/convert", QuoteConvert(stubConvertService{
		err: pkgerrors.New(pkgerrors.CodeStateConflict, "quote already converted"),
	}, nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, authedRequest(http.MethodPost, "/quotes/"+uuid.NewString()+"/convert", nil))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}
