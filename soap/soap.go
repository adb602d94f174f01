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

// Package soap is the HTTP transport: it decodes SOAP envelopes, dispatches
// the body member to the matching operation and marshals the answer back.
package soap

import (
	"encoding/xml"
	"io"
	"net/http"

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/exchange"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/eliona-smart-building-assistant/go-utils/log"
	"github.com/friendsofgo/errors"
	"github.com/gorilla/mux"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// responseEnvelope declares only the envelope namespace: the payload
// elements inside the body are emitted without a namespace, matching the
// local-name-only schema structs.
type responseEnvelope struct {
	XMLName    xml.Name     `xml:"soap:Envelope"`
	EnvelopeNS string       `xml:"xmlns:soap,attr"`
	Body       responseBody `xml:"soap:Body"`
}

type responseBody struct {
	Payload any
}

type fault struct {
	XMLName     xml.Name `xml:"soap:Fault"`
	FaultCode   string   `xml:"faultcode"`
	FaultString string   `xml:"faultstring"`
}

// Handler serves the EWS endpoint and the liveness probe.
type Handler struct {
	facade *exchange.Facade
	router *mux.Router
}

// NewHandler builds the HTTP handler around the operation facade.
func NewHandler(facade *exchange.Facade) *Handler {
	h := &Handler{facade: facade}
	router := mux.NewRouter()
	router.HandleFunc("/EWS/Exchange.asmx", h.serveSOAP).Methods(http.MethodPost)
	router.HandleFunc("/healthz", serveHealth).Methods(http.MethodGet)
	h.router = router
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) serveSOAP(w http.ResponseWriter, r *http.Request) {
	caller := model.UserFromRequest(r)

	operation, request, err := decodeRequest(r.Body)
	if err != nil {
		log.Warn("soap", "decoding request from %s: %v", caller.UserID, err)
		writeFault(w, http.StatusBadRequest, "soap:Client", err.Error())
		return
	}

	response, err := h.dispatch(r, caller, operation, request)
	if err != nil {
		if apiErr, ok := pim.AsAPIError(err); ok {
			writeFault(w, apiErr.Status, "soap:Client", apiErr.Message)
			return
		}
		log.Error("soap", "handling %s for %s: %v", operation, caller.UserID, err)
		writeFault(w, http.StatusInternalServerError, "soap:Server", err.Error())
		return
	}
	writeResponse(w, response)
}

func (h *Handler) dispatch(r *http.Request, caller model.UserInfo, operation string, request any) (any, error) {
	ctx := r.Context()
	switch operation {
	case "GetUserOofSettingsRequest":
		return h.facade.GetUserOofSettings(ctx, caller, request)
	case "SetUserOofSettingsRequest":
		return h.facade.SetUserOofSettings(ctx, caller, request)
	case "GetUserConfiguration":
		return h.facade.GetUserConfiguration(ctx, caller, request)
	case "CreateUserConfiguration":
		return h.facade.CreateUserConfiguration(ctx, caller, request)
	case "UpdateUserConfiguration":
		return h.facade.UpdateUserConfiguration(ctx, caller, request)
	case "DeleteUserConfiguration":
		return h.facade.DeleteUserConfiguration(ctx, caller, request)
	case "GetUserPhoto":
		return h.facade.GetUserPhoto(ctx, caller, request)
	case "SetUserPhoto":
		return h.facade.SetUserPhoto(ctx, caller, request)
	case "GetUserAvailabilityRequest":
		return h.facade.GetUserAvailability(ctx, caller, request)
	default:
		return nil, errors.Errorf("unsupported operation %s", operation)
	}
}

// newRequest maps a body member's local name to its request type.
func newRequest(name string) any {
	switch name {
	case "GetUserOofSettingsRequest":
		return &ews.GetUserOofSettingsRequest{}
	case "SetUserOofSettingsRequest":
		return &ews.SetUserOofSettingsRequest{}
	case "GetUserConfiguration":
		return &ews.GetUserConfigurationRequest{}
	case "CreateUserConfiguration":
		return &ews.CreateUserConfigurationRequest{}
	case "UpdateUserConfiguration":
		return &ews.UpdateUserConfigurationRequest{}
	case "DeleteUserConfiguration":
		return &ews.DeleteUserConfigurationRequest{}
	case "GetUserPhoto":
		return &ews.GetUserPhotoRequest{}
	case "SetUserPhoto":
		return &ews.SetUserPhotoRequest{}
	case "GetUserAvailabilityRequest":
		return &ews.GetUserAvailabilityRequest{}
	default:
		return nil
	}
}

// decodeRequest walks the envelope to the first body member and decodes it.
func decodeRequest(r io.Reader) (string, any, error) {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", nil, errors.Wrap(err, "reading envelope")
		}
		if start, ok := token.(xml.StartElement); ok && start.Name.Local == "Body" {
			break
		}
	}
	for {
		token, err := decoder.Token()
		if err != nil {
			return "", nil, errors.Wrap(err, "reading body")
		}
		switch t := token.(type) {
		case xml.StartElement:
			request := newRequest(t.Name.Local)
			if request == nil {
				return t.Name.Local, nil, errors.Errorf("unsupported operation %s", t.Name.Local)
			}
			if err := decoder.DecodeElement(request, &t); err != nil {
				return t.Name.Local, nil, errors.Wrapf(err, "decoding %s", t.Name.Local)
			}
			return t.Name.Local, request, nil
		case xml.EndElement:
			if t.Name.Local == "Body" {
				return "", nil, errors.New("empty request body")
			}
		}
	}
}

func writeResponse(w http.ResponseWriter, payload any) {
	envelope := responseEnvelope{
		EnvelopeNS: envelopeNS,
		Body:       responseBody{Payload: payload},
	}
	body, err := xml.Marshal(envelope)
	if err != nil {
		log.Error("soap", "marshaling response: %v", err)
		writeFault(w, http.StatusInternalServerError, "soap:Server", "failed to marshal response")
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}

func writeFault(w http.ResponseWriter, status int, code, message string) {
	envelope := responseEnvelope{
		EnvelopeNS: envelopeNS,
		Body:       responseBody{Payload: fault{FaultCode: code, FaultString: message}},
	}
	body, err := xml.Marshal(envelope)
	if err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}
