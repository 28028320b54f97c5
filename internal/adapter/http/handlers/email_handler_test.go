package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_interfaces "cms_backend/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEmailRouter(t *testing.T) (*gin.Engine, *mock_interfaces.MockIMailGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gateway := mock_interfaces.NewMockIMailGateway(ctrl)
	h := NewEmailHandler(gateway)

	r := gin.New()
	r.POST("/v1/email/verify", h.VerifyEmail)
	r.POST("/v1/email/send", h.SendEmail)
	return r, gateway
}

func TestEmailHandler_VerifyEmail(t *testing.T) {
	t.Run("bad credentials", func(t *testing.T) {
		r, gateway := newEmailRouter(t)

		gateway.EXPECT().VerifyCredentials(gomock.Any(), "user@cmseng.com.br", "wrong").Return(errors.New("535 auth failed"))

		req := httptest.NewRequest(http.MethodPost, "/v1/email/verify", bytes.NewBufferString(`{"email":"user@cmseng.com.br","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["valid"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		r, gateway := newEmailRouter(t)

		gateway.EXPECT().VerifyCredentials(gomock.Any(), "user@cmseng.com.br", "secret").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/email/verify", bytes.NewBufferString(`{"email":"user@cmseng.com.br","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["valid"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestEmailHandler_SendEmail(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("DEFAULT_SMTP_EMAIL", "")
		t.Setenv("DEFAULT_SMTP_PASSWORD", "")
		r, _ := newEmailRouter(t)

		body := `{"recipient_email":"to@test.com","subject":"Oi","body":"<p>oi</p>"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing recipients", func(t *testing.T) {
		r, _ := newEmailRouter(t)

		body := `{"subject":"Oi","body":"<p>oi</p>","sender_email":"me@test.com","sender_password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("flattens recipient_email and recipients", func(t *testing.T) {
		r, gateway := newEmailRouter(t)

		gateway.EXPECT().Send(gomock.Any(), "me@test.com", "x",
			[]string{"to@test.com", "cc@test.com"}, "Oi", "<p>oi</p>").Return(nil)

		body := `{"recipient_email":"to@test.com","recipients":[{"email":"cc@test.com"}],"subject":"Oi","body":"<p>oi</p>","sender_email":"me@test.com","sender_password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("fallback service account from env", func(t *testing.T) {
		t.Setenv("DEFAULT_SMTP_EMAIL", "service@cmseng.com.br")
		t.Setenv("DEFAULT_SMTP_PASSWORD", "svc-secret")
		r, gateway := newEmailRouter(t)

		gateway.EXPECT().Send(gomock.Any(), "service@cmseng.com.br", "svc-secret",
			[]string{"to@test.com"}, "Oi", "<p>oi</p>").Return(nil)

		body := `{"recipient_email":"to@test.com","subject":"Oi","body":"<p>oi</p>"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("relay failure", func(t *testing.T) {
		r, gateway := newEmailRouter(t)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		body := `{"recipient_email":"to@test.com","subject":"Oi","body":"<p>oi</p>","sender_email":"me@test.com","sender_password":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/email/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
