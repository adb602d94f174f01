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

// Package exchange translates EWS user-service operations onto the PIM
// backend. Every handler takes the caller's identity explicitly, checks
// ownership, maps between the two schemas and classifies failures into the
// EWS response-code vocabulary. Nothing is kept across requests.
package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
)

// Backend is the narrow PIM contract the handlers consume. *pim.Client
// implements it; tests substitute stubs.
type Backend interface {
	GetOutOfOffice(ctx context.Context, userID string) (*pim.OutOfOffice, error)
	UpdateOutOfOffice(ctx context.Context, update pim.OutOfOfficeUpdate) error
	GetLabel(ctx context.Context, owner string, ref model.FolderReference) (*pim.Label, error)
	UpdateItem(ctx context.Context, owner string, label *pim.Label) error
	GetAvatar(ctx context.Context, email string, height, width int) ([]byte, error)
}

// Service holds the operation handlers.
type Service struct {
	backend Backend
}

// NewService builds a service on top of the given backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// deniedFor is the authorization gate of the OOF operations: the caller may
// only touch their own mailbox. The backend cannot fetch another user's
// OOF record, so delegated access stays blocked and every cross-user
// request is denied before the backend is contacted.
func deniedFor(caller model.UserInfo, address string) *ews.ResponseMessage {
	if address == caller.UserID {
		return nil
	}
	msg := ews.ErrorMessage(ews.ErrorAccessDenied, fmt.Sprintf("Access to mailbox %s is denied", address))
	return &msg
}

// ewsTimeFormats are the timestamp variants EWS clients send: with offset,
// UTC with Z, and bare local time.
var ewsTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
}

// canonicalTimestamp reformats an EWS timestamp to UTC RFC 3339 for the
// backend wire. Values that match no known format pass through untouched.
func canonicalTimestamp(value string) string {
	for _, format := range ewsTimeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
	}
	return value
}
