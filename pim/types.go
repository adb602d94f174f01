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

package pim

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/friendsofgo/errors"
	"github.com/volatiletech/null/v8"
)

// Backend OOF states and audiences as the PIM API reports them.
const (
	StateEnabled   = "ENABLED"
	StateScheduled = "SCHEDULED"
	StateDisabled  = "DISABLED"

	AudienceAll   = "ALL"
	AudienceKnown = "KNOWN"
	AudienceNone  = "NONE"
)

// OutOfOffice is the backend's out-of-office record. The backend models a
// single reply string shared by internal and external audiences, and keeps
// the window endpoints as opaque timestamp strings.
type OutOfOffice struct {
	State            string      `json:"state"`
	ExternalAudience string      `json:"externalAudience"`
	StartDate        null.String `json:"startDate"`
	EndDate          null.String `json:"endDate"`
	ReplyMessage     null.String `json:"replyMessage"`
}

// OutOfOfficeUpdate is the write payload of the backend's OOF update call.
type OutOfOfficeUpdate struct {
	Owner           string      `json:"owner"`
	Enabled         bool        `json:"enabled"`
	SystemState     bool        `json:"systemState"`
	ExcludeInternet bool        `json:"excludeInternet"`
	StartDateTime   null.String `json:"startDateTime"`
	EndDateTime     null.String `json:"endDateTime"`
	GeneralMessage  null.String `json:"generalMessage"`
}

// Label is a folder-like backend entity with an extensible named-property
// bag. The bag mutators work on the in-memory copy; UpdateItem persists it.
type Label struct {
	ID               string                     `json:"id"`
	DisplayName      string                     `json:"displayName"`
	Type             string                     `json:"type"`
	AdditionalFields map[string]json.RawMessage `json:"additionalFields,omitempty"`
}

// AdditionalProperty returns the raw value stored under name, if any.
func (l *Label) AdditionalProperty(name string) (json.RawMessage, bool) {
	v, ok := l.AdditionalFields[name]
	return v, ok
}

// SetAdditionalProperty stores value under name, replacing any previous
// value at that name.
func (l *Label) SetAdditionalProperty(name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "marshalling additional property %q", name)
	}
	if l.AdditionalFields == nil {
		l.AdditionalFields = make(map[string]json.RawMessage)
	}
	l.AdditionalFields[name] = raw
	return nil
}

// DeleteAdditionalProperty removes the value stored under name and reports
// whether one existed.
func (l *Label) DeleteAdditionalProperty(name string) bool {
	if _, ok := l.AdditionalFields[name]; !ok {
		return false
	}
	delete(l.AdditionalFields, name)
	return true
}

// APIError is a backend rejection carrying an HTTP-like status. Errors of
// this shape are client-facing; everything else is treated as internal.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pim: status %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an APIError, if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is the backend's not-found signal.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}
