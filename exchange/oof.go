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

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/eliona-smart-building-assistant/go-utils/log"
	"github.com/volatiletech/null/v8"
)

func mapOofState(state string) ews.OofState {
	switch state {
	case pim.StateEnabled:
		return ews.OofStateEnabled
	case pim.StateScheduled:
		return ews.OofStateScheduled
	default:
		return ews.OofStateDisabled
	}
}

func mapExternalAudience(audience string) ews.ExternalAudience {
	switch audience {
	case pim.AudienceAll:
		return ews.ExternalAudienceAll
	case pim.AudienceKnown:
		return ews.ExternalAudienceKnown
	default:
		return ews.ExternalAudienceNone
	}
}

// GetUserOofSettings reads the caller's out-of-office record. A mailbox
// without a record is not an error: the response then carries disabled
// settings with no audience.
func (s *Service) GetUserOofSettings(ctx context.Context, caller model.UserInfo, req *ews.GetUserOofSettingsRequest) *ews.GetUserOofSettingsResponse {
	if denied := deniedFor(caller, req.Mailbox.Address); denied != nil {
		return &ews.GetUserOofSettingsResponse{ResponseMessage: *denied}
	}

	ooo, err := s.backend.GetOutOfOffice(ctx, caller.UserID)
	if err != nil {
		log.Error("exchange", "fetching out-of-office settings for %s: %v", caller.UserID, err)
		msg := ews.ErrorMessage(ews.ErrorServiceUnavailable, "Failed to fetch user out-of-office settings")
		msg.MessageXML = &ews.MessageXML{ExceptionDetail: err.Error()}
		return &ews.GetUserOofSettingsResponse{ResponseMessage: msg}
	}

	settings := &ews.OofSettings{
		OofState:         ews.OofStateDisabled,
		ExternalAudience: ews.ExternalAudienceNone,
	}
	if ooo != nil {
		settings.OofState = mapOofState(ooo.State)
		settings.ExternalAudience = mapExternalAudience(ooo.ExternalAudience)
		if ooo.StartDate.Valid && ooo.EndDate.Valid {
			settings.Duration = &ews.Duration{
				StartTime: ooo.StartDate.String,
				EndTime:   ooo.EndDate.String,
			}
		}
		// The backend stores a single reply text; it serves both audiences.
		if ooo.ReplyMessage.Valid {
			settings.InternalReply = ews.NewReplyBody(ooo.ReplyMessage.String, "")
			settings.ExternalReply = ews.NewReplyBody(ooo.ReplyMessage.String, "")
		}
	}

	return &ews.GetUserOofSettingsResponse{
		ResponseMessage:  ews.SuccessMessage(),
		OofSettings:      settings,
		AllowExternalOof: settings.ExternalAudience,
	}
}

// SetUserOofSettings writes the caller's out-of-office record. When both
// reply bodies are given the external one wins, since the backend keeps
// only one message.
func (s *Service) SetUserOofSettings(ctx context.Context, caller model.UserInfo, req *ews.SetUserOofSettingsRequest) *ews.SetUserOofSettingsResponse {
	if denied := deniedFor(caller, req.Mailbox.Address); denied != nil {
		return &ews.SetUserOofSettingsResponse{ResponseMessage: *denied}
	}

	settings := req.UserOofSettings
	enabled := settings.OofState != ews.OofStateDisabled
	update := pim.OutOfOfficeUpdate{
		Owner:           caller.UserID,
		Enabled:         enabled,
		SystemState:     enabled,
		ExcludeInternet: settings.ExternalAudience != ews.ExternalAudienceAll,
	}
	if d := settings.Duration; d != nil {
		update.StartDateTime = null.StringFrom(canonicalTimestamp(d.StartTime))
		update.EndDateTime = null.StringFrom(canonicalTimestamp(d.EndTime))
	}
	if r := settings.InternalReply; r != nil {
		update.GeneralMessage = null.StringFrom(r.Message)
	}
	if r := settings.ExternalReply; r != nil {
		update.GeneralMessage = null.StringFrom(r.Message)
	}

	if err := s.backend.UpdateOutOfOffice(ctx, update); err != nil {
		log.Error("exchange", "updating out-of-office settings for %s: %v", caller.UserID, err)
		msg := ews.ErrorMessage(ews.ErrorServiceUnavailable, "Failed to update user out-of-office settings")
		msg.MessageXML = &ews.MessageXML{ExceptionDetail: err.Error()}
		return &ews.SetUserOofSettingsResponse{ResponseMessage: msg}
	}
	return &ews.SetUserOofSettingsResponse{ResponseMessage: ews.SuccessMessage()}
}
