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

package ews

import "encoding/xml"

// GetUserOofSettingsRequest asks for the out-of-office settings of a mailbox.
type GetUserOofSettingsRequest struct {
	Mailbox Mailbox `xml:"Mailbox"`
}

// GetUserOofSettingsResponse carries the settings plus the schema's
// duplicate top-level AllowExternalOof field mirroring ExternalAudience.
type GetUserOofSettingsResponse struct {
	XMLName          xml.Name         `xml:"GetUserOofSettingsResponse"`
	ResponseMessage  ResponseMessage  `xml:"ResponseMessage"`
	OofSettings      *OofSettings     `xml:"OofSettings,omitempty"`
	AllowExternalOof ExternalAudience `xml:"AllowExternalOof,omitempty"`
}

// SetUserOofSettingsRequest replaces the out-of-office settings of a mailbox.
type SetUserOofSettingsRequest struct {
	Mailbox         Mailbox     `xml:"Mailbox"`
	UserOofSettings OofSettings `xml:"UserOofSettings"`
}

// SetUserOofSettingsResponse carries the status envelope only.
type SetUserOofSettingsResponse struct {
	XMLName         xml.Name        `xml:"SetUserOofSettingsResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
}

// OofSettings is the out-of-office configuration of a mailbox. The Duration
// only applies when OofState is Scheduled; audience and replies carry no
// meaning while the state is Disabled.
type OofSettings struct {
	OofState         OofState         `xml:"OofState"`
	ExternalAudience ExternalAudience `xml:"ExternalAudience"`
	Duration         *Duration        `xml:"Duration,omitempty"`
	InternalReply    *ReplyBody       `xml:"InternalReply,omitempty"`
	ExternalReply    *ReplyBody       `xml:"ExternalReply,omitempty"`
}

// Duration is a scheduled OOF time window. The instants are carried as the
// backend supplied them; no timezone conversion happens on the Get path.
type Duration struct {
	StartTime string `xml:"StartTime"`
	EndTime   string `xml:"EndTime"`
}

// ReplyBody is an OOF reply message. The language travels as an attribute,
// not as a sibling element.
type ReplyBody struct {
	Lang    string `xml:"lang,attr,omitempty"`
	Message string `xml:"Message"`
}

// NewReplyBody couples a message with an optional language tag.
func NewReplyBody(message, lang string) *ReplyBody {
	return &ReplyBody{Lang: lang, Message: message}
}
