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

// Package ews holds the SOAP payload types of the Exchange Web Services
// operations this middleware serves, mirroring the EWS XML schema. The
// structs use local element names only; the SOAP adapter supplies the
// envelope and namespace declarations.
package ews

// ResponseMessage is the status part every response carries.
type ResponseMessage struct {
	ResponseClass ResponseClass `xml:"ResponseClass,attr"`
	ResponseCode  ResponseCode  `xml:"ResponseCode"`
	MessageText   string        `xml:"MessageText,omitempty"`
	MessageXML    *MessageXML   `xml:"MessageXml,omitempty"`
}

// MessageXML carries structured diagnostic detail alongside an error.
type MessageXML struct {
	ExceptionDetail string `xml:"Value,omitempty"`
}

// SuccessMessage returns a ResponseMessage reporting success.
func SuccessMessage() ResponseMessage {
	return ResponseMessage{
		ResponseClass: ResponseClassSuccess,
		ResponseCode:  NoError,
	}
}

// ErrorMessage returns a ResponseMessage reporting an error with the given
// code and human-readable text.
func ErrorMessage(code ResponseCode, text string) ResponseMessage {
	return ResponseMessage{
		ResponseClass: ResponseClassError,
		ResponseCode:  code,
		MessageText:   text,
	}
}

// Mailbox identifies a mailbox by SMTP address.
type Mailbox struct {
	Name        string `xml:"Name,omitempty"`
	Address     string `xml:"Address"`
	RoutingType string `xml:"RoutingType,omitempty"`
}

// EmailAddress is the attendee-style mailbox reference used by the
// availability shapes.
type EmailAddress struct {
	Name        string `xml:"Name,omitempty"`
	Address     string `xml:"Address"`
	RoutingType string `xml:"RoutingType,omitempty"`
}

// ItemID references a store item.
type ItemID struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

// FolderID references a concrete folder.
type FolderID struct {
	ID        string `xml:"Id,attr"`
	ChangeKey string `xml:"ChangeKey,attr,omitempty"`
}

// DistinguishedFolder references a well-known folder by name.
type DistinguishedFolder struct {
	ID      DistinguishedFolderID `xml:"Id,attr"`
	Mailbox *Mailbox              `xml:"Mailbox,omitempty"`
}
