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
	"encoding/base64"
	"fmt"

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/eliona-smart-building-assistant/go-utils/log"
)

// GetUserPhoto fetches a mailbox photo at the requested size. Backend
// status errors are handed back to the caller untouched so the transport
// can render them; anything else becomes an internal-server-error response.
func (s *Service) GetUserPhoto(ctx context.Context, caller model.UserInfo, req *ews.GetUserPhotoRequest) (*ews.GetUserPhotoResponse, error) {
	height, width := req.SizeRequested.Dimensions()
	photo, err := s.backend.GetAvatar(ctx, req.Email, height, width)
	if err != nil {
		if _, ok := pim.AsAPIError(err); ok {
			return nil, err
		}
		log.Error("exchange", "fetching photo for %s: %v", req.Email, err)
		msg := ews.ErrorMessage(ews.ErrorInternalServerError, fmt.Sprintf("Failed to fetch photo for %s", req.Email))
		return &ews.GetUserPhotoResponse{ResponseMessage: msg}, nil
	}
	return &ews.GetUserPhotoResponse{
		ResponseMessage: ews.SuccessMessage(),
		HasChanged:      false,
		PictureData:     base64.StdEncoding.EncodeToString(photo),
	}, nil
}
