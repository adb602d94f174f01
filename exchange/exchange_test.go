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

	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/friendsofgo/errors"
)

// stubBackend implements Backend with per-call function fields and counts
// every invocation, so tests can assert which backend calls happened.
type stubBackend struct {
	getOOO     func(ctx context.Context, userID string) (*pim.OutOfOffice, error)
	updateOOO  func(ctx context.Context, update pim.OutOfOfficeUpdate) error
	getLabel   func(ctx context.Context, owner string, ref model.FolderReference) (*pim.Label, error)
	updateItem func(ctx context.Context, owner string, label *pim.Label) error
	getAvatar  func(ctx context.Context, email string, height, width int) ([]byte, error)

	calls map[string]int
}

func newStubBackend() *stubBackend {
	return &stubBackend{calls: map[string]int{}}
}

func (s *stubBackend) GetOutOfOffice(ctx context.Context, userID string) (*pim.OutOfOffice, error) {
	s.calls["GetOutOfOffice"]++
	if s.getOOO == nil {
		return nil, errors.New("unexpected GetOutOfOffice call")
	}
	return s.getOOO(ctx, userID)
}

func (s *stubBackend) UpdateOutOfOffice(ctx context.Context, update pim.OutOfOfficeUpdate) error {
	s.calls["UpdateOutOfOffice"]++
	if s.updateOOO == nil {
		return errors.New("unexpected UpdateOutOfOffice call")
	}
	return s.updateOOO(ctx, update)
}

func (s *stubBackend) GetLabel(ctx context.Context, owner string, ref model.FolderReference) (*pim.Label, error) {
	s.calls["GetLabel"]++
	if s.getLabel == nil {
		return nil, errors.New("unexpected GetLabel call")
	}
	return s.getLabel(ctx, owner, ref)
}

func (s *stubBackend) UpdateItem(ctx context.Context, owner string, label *pim.Label) error {
	s.calls["UpdateItem"]++
	if s.updateItem == nil {
		return errors.New("unexpected UpdateItem call")
	}
	return s.updateItem(ctx, owner, label)
}

func (s *stubBackend) GetAvatar(ctx context.Context, email string, height, width int) ([]byte, error) {
	s.calls["GetAvatar"]++
	if s.getAvatar == nil {
		return nil, errors.New("unexpected GetAvatar call")
	}
	return s.getAvatar(ctx, email, height, width)
}

func caller(userID string) model.UserInfo {
	return model.UserInfo{UserID: userID}
}

func TestCanonicalTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"utc z", "2023-01-02T08:00:00Z", "2023-01-02T08:00:00Z"},
		{"offset colon", "2023-01-02T09:00:00+01:00", "2023-01-02T08:00:00Z"},
		{"offset compact", "2023-01-02T09:00:00+0100", "2023-01-02T08:00:00Z"},
		{"bare local", "2023-01-02T08:00:00", "2023-01-02T08:00:00Z"},
		{"unparseable passes through", "sometime tomorrow", "sometime tomorrow"},
		{"empty passes through", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalTimestamp(tt.input); got != tt.want {
				t.Errorf("canonicalTimestamp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnumMappingDefaults(t *testing.T) {
	// Unknown backend values degrade to the most restrictive variant.
	if got := mapOofState("MAINTENANCE"); got != "Disabled" {
		t.Errorf("mapOofState(MAINTENANCE) = %s, want Disabled", got)
	}
	if got := mapExternalAudience("EVERYONE"); got != "None" {
		t.Errorf("mapExternalAudience(EVERYONE) = %s, want None", got)
	}
}

func TestDeniedFor(t *testing.T) {
	if denied := deniedFor(caller("alice@example.com"), "alice@example.com"); denied != nil {
		t.Errorf("own mailbox should pass the gate, got %+v", denied)
	}
	denied := deniedFor(caller("alice@example.com"), "bob@example.com")
	if denied == nil {
		t.Fatal("foreign mailbox should be denied")
	}
	if denied.ResponseCode != "ErrorAccessDenied" {
		t.Errorf("response code = %s, want ErrorAccessDenied", denied.ResponseCode)
	}
}
