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

package exchange

import (
	"context"
	"testing"

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/pim"
)

func TestFacadeRejectsWrongRequestType(t *testing.T) {
	facade := NewFacade(NewService(newStubBackend()))
	ctx := context.Background()
	who := caller("alice@example.com")

	if _, err := facade.GetUserOofSettings(ctx, who, &ews.SetUserOofSettingsRequest{}); err == nil {
		t.Error("GetUserOofSettings accepted a foreign request type")
	}
	if _, err := facade.GetUserConfiguration(ctx, who, "not a request"); err == nil {
		t.Error("GetUserConfiguration accepted a string")
	}
	if _, err := facade.GetUserAvailability(ctx, who, nil); err == nil {
		t.Error("GetUserAvailability accepted nil")
	}
}

func TestFacadeDelegates(t *testing.T) {
	backend := newStubBackend()
	backend.getOOO = func(context.Context, string) (*pim.OutOfOffice, error) { return nil, nil }
	facade := NewFacade(NewService(backend))

	resp, err := facade.GetUserOofSettings(context.Background(), caller("alice@example.com"), &ews.GetUserOofSettingsRequest{
		Mailbox: ews.Mailbox{Address: "alice@example.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ResponseMessage.ResponseClass != ews.ResponseClassSuccess {
		t.Errorf("response class = %s, want Success", resp.ResponseMessage.ResponseClass)
	}
	if backend.calls["GetOutOfOffice"] != 1 {
		t.Errorf("backend called %d times, want 1", backend.calls["GetOutOfOffice"])
	}
}

func TestGetUserAvailabilityMock(t *testing.T) {
	facade := NewFacade(NewService(newStubBackend()))

	req := &ews.GetUserAvailabilityRequest{
		MailboxDataArray: ews.MailboxDataArray{
			MailboxData: []ews.MailboxData{
				{Email: ews.EmailAddress{Address: "alice@example.com"}},
				{Email: ews.EmailAddress{Address: "bob@example.com"}},
			},
		},
		SuggestionsViewOptions: &ews.SuggestionsViewOptions{MeetingDurationInMinutes: 30},
	}
	resp, err := facade.GetUserAvailability(context.Background(), caller("alice@example.com"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(resp.FreeBusyResponseArray.FreeBusyResponse); got != 2 {
		t.Errorf("free/busy responses = %d, want one per attendee", got)
	}
	for _, fb := range resp.FreeBusyResponseArray.FreeBusyResponse {
		if fb.ResponseMessage.ResponseClass != ews.ResponseClassSuccess {
			t.Errorf("attendee response class = %s, want Success", fb.ResponseMessage.ResponseClass)
		}
	}
	if resp.SuggestionsResponse == nil {
		t.Fatal("suggestions requested but absent")
	}

	// Without suggestion options the suggestions block stays out.
	req.SuggestionsViewOptions = nil
	resp, err = facade.GetUserAvailability(context.Background(), caller("alice@example.com"), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SuggestionsResponse != nil {
		t.Error("suggestions present without being requested")
	}
}

func TestSetUserPhotoMock(t *testing.T) {
	facade := NewFacade(NewService(newStubBackend()))

	resp, err := facade.SetUserPhoto(context.Background(), caller("alice@example.com"), &ews.SetUserPhotoRequest{
		Email:   "alice@example.com",
		Content: "AQID",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ResponseMessage.ResponseClass != ews.ResponseClassSuccess {
		t.Errorf("response class = %s, want Success", resp.ResponseMessage.ResponseClass)
	}
}
