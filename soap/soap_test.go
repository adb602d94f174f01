//  This file is part of the eliona project.
//  Copyright © 2022 LEICOM iTEC AG. All Rights Reserved.
//  ______ _ _
// |  ____| (_)
// | |__  | |_  ___  _ __   __ _
// |  __| | | |/ _ \| '_ \ / _` |
// | |____| | | (_) | | | | (_| |
// |______|_|_|\___/|_| |_|\__,_|
//
//  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING
//  BUT NOT LIMITED  TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
//  NON INFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
//  DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
//  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package soap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HannaPleshko/middleware-sub004/exchange"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/volatiletech/null/v8"
)

// stubBackend is a minimal exchange.Backend for transport tests.
type stubBackend struct {
	ooo       *pim.OutOfOffice
	oooErr    error
	avatar    []byte
	avatarErr error
}

func (s *stubBackend) GetOutOfOffice(context.Context, string) (*pim.OutOfOffice, error) {
	return s.ooo, s.oooErr
}

func (s *stubBackend) UpdateOutOfOffice(context.Context, pim.OutOfOfficeUpdate) error {
	return nil
}

func (s *stubBackend) GetLabel(context.Context, string, model.FolderReference) (*pim.Label, error) {
	return &pim.Label{ID: "label-1"}, nil
}

func (s *stubBackend) UpdateItem(context.Context, string, *pim.Label) error {
	return nil
}

func (s *stubBackend) GetAvatar(context.Context, string, int, int) ([]byte, error) {
	return s.avatar, s.avatarErr
}

func newTestHandler(backend *stubBackend) *Handler {
	return NewHandler(exchange.NewFacade(exchange.NewService(backend)))
}

func post(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/EWS/Exchange.asmx", strings.NewReader(body))
	req.SetBasicAuth("alice@example.com", "secret")
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func envelope(body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"
               xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages"
               xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
  <soap:Body>` + body + `</soap:Body>
</soap:Envelope>`
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(&stubBackend{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetUserOofSettingsRoundTrip(t *testing.T) {
	handler := newTestHandler(&stubBackend{
		ooo: &pim.OutOfOffice{
			State:            pim.StateEnabled,
			ExternalAudience: pim.AudienceAll,
			ReplyMessage:     null.StringFrom("away"),
		},
	})

	rec := post(t, handler, envelope(`
		<m:GetUserOofSettingsRequest>
		  <t:Mailbox><t:Address>alice@example.com</t:Address></t:Mailbox>
		</m:GetUserOofSettingsRequest>`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{
		`ResponseClass="Success"`,
		"<OofState>Enabled</OofState>",
		"<ExternalAudience>All</ExternalAudience>",
		"GetUserOofSettingsResponse",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response body missing %s:\n%s", want, body)
		}
	}
}

func TestResponseEnvelopeDeclaresOnlyUsedNamespaces(t *testing.T) {
	handler := newTestHandler(&stubBackend{})

	rec := post(t, handler, envelope(`
		<m:GetUserOofSettingsRequest>
		  <t:Mailbox><t:Address>alice@example.com</t:Address></t:Mailbox>
		</m:GetUserOofSettingsRequest>`))

	body := rec.Body.String()
	if !strings.Contains(body, `xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`) {
		t.Errorf("response envelope missing the soap namespace:\n%s", body)
	}
	// The payload elements are unprefixed, so no other namespace may be
	// declared.
	for _, stray := range []string{"xmlns:m=", "xmlns:t="} {
		if strings.Contains(body, stray) {
			t.Errorf("response envelope declares unused namespace %s:\n%s", stray, body)
		}
	}
}

func TestAccessDeniedOverTransport(t *testing.T) {
	handler := newTestHandler(&stubBackend{})

	rec := post(t, handler, envelope(`
		<m:GetUserOofSettingsRequest>
		  <t:Mailbox><t:Address>bob@example.com</t:Address></t:Mailbox>
		</m:GetUserOofSettingsRequest>`))

	// Denials are EWS-level errors, not transport faults.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ErrorAccessDenied") {
		t.Errorf("response body missing ErrorAccessDenied:\n%s", rec.Body.String())
	}
}

func TestUnsupportedOperation(t *testing.T) {
	handler := newTestHandler(&stubBackend{})

	rec := post(t, handler, envelope(`<m:ResolveNames/>`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "soap:Fault") {
		t.Errorf("response body missing fault:\n%s", rec.Body.String())
	}
}

func TestEmptyBody(t *testing.T) {
	handler := newTestHandler(&stubBackend{})

	rec := post(t, handler, envelope(``))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPhotoErrorPassesThrough(t *testing.T) {
	handler := newTestHandler(&stubBackend{
		avatarErr: &pim.APIError{Status: 404, Message: "no photo stored"},
	})

	rec := post(t, handler, envelope(`
		<m:GetUserPhoto>
		  <m:Email>bob@example.com</m:Email>
		  <m:SizeRequested>HR96x96</m:SizeRequested>
		</m:GetUserPhoto>`))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want the backend's 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no photo stored") {
		t.Errorf("response body missing backend message:\n%s", rec.Body.String())
	}
}
