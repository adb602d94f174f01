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
	"github.com/friendsofgo/errors"
)

// Facade is the uniform entry point the transport dispatches into. Each
// method narrows the decoded request to its concrete type; a mismatch is a
// programming error in the dispatcher, not a client fault.
type Facade struct {
	svc *Service
}

// NewFacade wraps a service for transport dispatch.
func NewFacade(svc *Service) *Facade {
	return &Facade{svc: svc}
}

func (f *Facade) GetUserOofSettings(ctx context.Context, caller model.UserInfo, req any) (*ews.GetUserOofSettingsResponse, error) {
	request, ok := req.(*ews.GetUserOofSettingsRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for GetUserOofSettings", req)
	}
	return f.svc.GetUserOofSettings(ctx, caller, request), nil
}

func (f *Facade) SetUserOofSettings(ctx context.Context, caller model.UserInfo, req any) (*ews.SetUserOofSettingsResponse, error) {
	request, ok := req.(*ews.SetUserOofSettingsRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for SetUserOofSettings", req)
	}
	return f.svc.SetUserOofSettings(ctx, caller, request), nil
}

func (f *Facade) GetUserConfiguration(ctx context.Context, caller model.UserInfo, req any) (*ews.GetUserConfigurationResponse, error) {
	request, ok := req.(*ews.GetUserConfigurationRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for GetUserConfiguration", req)
	}
	return f.svc.GetUserConfiguration(ctx, caller, request), nil
}

func (f *Facade) CreateUserConfiguration(ctx context.Context, caller model.UserInfo, req any) (*ews.CreateUserConfigurationResponse, error) {
	request, ok := req.(*ews.CreateUserConfigurationRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for CreateUserConfiguration", req)
	}
	return f.svc.CreateUserConfiguration(ctx, caller, request), nil
}

func (f *Facade) UpdateUserConfiguration(ctx context.Context, caller model.UserInfo, req any) (*ews.UpdateUserConfigurationResponse, error) {
	request, ok := req.(*ews.UpdateUserConfigurationRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for UpdateUserConfiguration", req)
	}
	return f.svc.UpdateUserConfiguration(ctx, caller, request), nil
}

func (f *Facade) DeleteUserConfiguration(ctx context.Context, caller model.UserInfo, req any) (*ews.DeleteUserConfigurationResponse, error) {
	request, ok := req.(*ews.DeleteUserConfigurationRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for DeleteUserConfiguration", req)
	}
	return f.svc.DeleteUserConfiguration(ctx, caller, request), nil
}

func (f *Facade) GetUserPhoto(ctx context.Context, caller model.UserInfo, req any) (*ews.GetUserPhotoResponse, error) {
	request, ok := req.(*ews.GetUserPhotoRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for GetUserPhoto", req)
	}
	return f.svc.GetUserPhoto(ctx, caller, request)
}

// SetUserPhoto is not backed yet; it acknowledges the write without
// storing anything.
func (f *Facade) SetUserPhoto(_ context.Context, _ model.UserInfo, req any) (*ews.SetUserPhotoResponse, error) {
	if _, ok := req.(*ews.SetUserPhotoRequest); !ok {
		return nil, errors.Errorf("unexpected request type %T for SetUserPhoto", req)
	}
	return mockSetUserPhotoResponse(), nil
}

// GetUserAvailability is not backed yet; it answers with placeholder
// free/busy data shaped by the request.
func (f *Facade) GetUserAvailability(_ context.Context, _ model.UserInfo, req any) (*ews.GetUserAvailabilityResponse, error) {
	request, ok := req.(*ews.GetUserAvailabilityRequest)
	if !ok {
		return nil, errors.Errorf("unexpected request type %T for GetUserAvailability", req)
	}
	return mockUserAvailabilityResponse(request), nil
}
