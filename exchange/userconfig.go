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
	"encoding/json"

	"github.com/HannaPleshko/middleware-sub004/ews"
	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/eliona-smart-building-assistant/go-utils/log"
	"github.com/volatiletech/null/v8"
)

// configData is the JSON shape a user configuration takes inside a label's
// additional-property bag. BinaryData and XMLData stay base64.
type configData struct {
	BinaryData null.String       `json:"binaryData,omitempty"`
	Dictionary map[string]string `json:"dictionary,omitempty"`
	XMLData    null.String       `json:"xmlData,omitempty"`
	ItemID     null.String       `json:"itemId,omitempty"`
}

// folderRef picks the folder reference out of a configuration name. With
// several references set, declaration order decides.
func folderRef(name ews.UserConfigurationName) model.FolderReference {
	switch {
	case name.DistinguishedFolder != nil:
		return model.DistinguishedFolderRef(string(name.DistinguishedFolder.ID))
	case name.FolderID != nil:
		return model.FolderIDRef(name.FolderID.ID)
	case name.AddressListID != nil:
		return model.AddressListRef(name.AddressListID.ID)
	default:
		return model.FolderReference{}
	}
}

// echoName rebuilds the configuration name for the response, carrying only
// the reference that was actually used.
func echoName(name ews.UserConfigurationName) ews.UserConfigurationName {
	echo := ews.UserConfigurationName{Name: name.Name}
	switch {
	case name.DistinguishedFolder != nil:
		echo.DistinguishedFolder = name.DistinguishedFolder
	case name.FolderID != nil:
		echo.FolderID = name.FolderID
	case name.AddressListID != nil:
		echo.AddressListID = name.AddressListID
	}
	return echo
}

// resolveLabel fetches the folder label a configuration lives on. A nil
// return message means success.
func (s *Service) resolveLabel(ctx context.Context, caller model.UserInfo, name ews.UserConfigurationName) (*pim.Label, *ews.ResponseMessage) {
	label, err := s.backend.GetLabel(ctx, caller.UserID, folderRef(name))
	if err != nil {
		log.Error("exchange", "resolving folder for configuration %s of %s: %v", name.Name, caller.UserID, err)
		var msg ews.ResponseMessage
		if pim.IsNotFound(err) {
			msg = ews.ErrorMessage(ews.ErrorFolderNotFound, "The specified folder could not be found in the store.")
		} else {
			msg = ews.ErrorMessage(ews.ErrorInternalServerError, err.Error())
		}
		return nil, &msg
	}
	return label, nil
}

// GetUserConfiguration reads a configuration off its folder label and
// projects the requested facets. A folder without that configuration still
// answers with success; the facets are just absent.
func (s *Service) GetUserConfiguration(ctx context.Context, caller model.UserInfo, req *ews.GetUserConfigurationRequest) *ews.GetUserConfigurationResponse {
	label, errMsg := s.resolveLabel(ctx, caller, req.UserConfigurationName)
	if errMsg != nil {
		return &ews.GetUserConfigurationResponse{ResponseMessage: *errMsg}
	}

	config := &ews.UserConfiguration{UserConfigurationName: echoName(req.UserConfigurationName)}
	if raw, ok := label.AdditionalProperty(req.UserConfigurationName.Name); ok {
		var data configData
		if err := json.Unmarshal(raw, &data); err != nil {
			log.Error("exchange", "decoding configuration %s of %s: %v", req.UserConfigurationName.Name, caller.UserID, err)
			msg := ews.ErrorMessage(ews.ErrorInternalServerError, err.Error())
			return &ews.GetUserConfigurationResponse{ResponseMessage: msg}
		}
		props := req.UserConfigurationProperties
		all := props == ews.UserConfigPropertiesAll
		if (all || props == ews.UserConfigPropertiesID) && data.ItemID.Valid {
			config.ItemID = &ews.ItemID{ID: data.ItemID.String}
		}
		if (all || props == ews.UserConfigPropertiesDictionary) && data.Dictionary != nil {
			config.Dictionary = ews.DictionaryFromMap(data.Dictionary)
		}
		if (all || props == ews.UserConfigPropertiesXMLData) && data.XMLData.Valid {
			xmlData := data.XMLData.String
			config.XMLData = &xmlData
		}
		if (all || props == ews.UserConfigPropertiesBinaryData) && data.BinaryData.Valid {
			binaryData := data.BinaryData.String
			config.BinaryData = &binaryData
		}
	}

	return &ews.GetUserConfigurationResponse{
		ResponseMessage:   ews.SuccessMessage(),
		UserConfiguration: config,
	}
}

// storeConfiguration writes a configuration into its folder label's
// property bag, overwriting whatever was there, and persists the label.
func (s *Service) storeConfiguration(ctx context.Context, caller model.UserInfo, config ews.UserConfiguration) *ews.ResponseMessage {
	label, errMsg := s.resolveLabel(ctx, caller, config.UserConfigurationName)
	if errMsg != nil {
		return errMsg
	}

	data := configData{Dictionary: config.Dictionary.Map()}
	if config.BinaryData != nil {
		data.BinaryData = null.StringFrom(*config.BinaryData)
	}
	if config.XMLData != nil {
		data.XMLData = null.StringFrom(*config.XMLData)
	}
	if config.ItemID != nil {
		data.ItemID = null.StringFrom(config.ItemID.ID)
	}
	if err := label.SetAdditionalProperty(config.UserConfigurationName.Name, data); err != nil {
		log.Error("exchange", "encoding configuration %s of %s: %v", config.UserConfigurationName.Name, caller.UserID, err)
		msg := ews.ErrorMessage(ews.ErrorInternalServerError, err.Error())
		return &msg
	}

	if err := s.backend.UpdateItem(ctx, caller.UserID, label); err != nil {
		log.Error("exchange", "persisting configuration %s of %s: %v", config.UserConfigurationName.Name, caller.UserID, err)
		msg := ews.ErrorMessage(ews.ErrorInternalServerError, err.Error())
		return &msg
	}
	return nil
}

// CreateUserConfiguration stores a configuration. An existing configuration
// of the same name is overwritten.
func (s *Service) CreateUserConfiguration(ctx context.Context, caller model.UserInfo, req *ews.CreateUserConfigurationRequest) *ews.CreateUserConfigurationResponse {
	if errMsg := s.storeConfiguration(ctx, caller, req.UserConfiguration); errMsg != nil {
		return &ews.CreateUserConfigurationResponse{ResponseMessage: *errMsg}
	}
	return &ews.CreateUserConfigurationResponse{ResponseMessage: ews.SuccessMessage()}
}

// UpdateUserConfiguration replaces a stored configuration wholesale. It
// does not require the configuration to exist beforehand.
func (s *Service) UpdateUserConfiguration(ctx context.Context, caller model.UserInfo, req *ews.UpdateUserConfigurationRequest) *ews.UpdateUserConfigurationResponse {
	if errMsg := s.storeConfiguration(ctx, caller, req.UserConfiguration); errMsg != nil {
		return &ews.UpdateUserConfigurationResponse{ResponseMessage: *errMsg}
	}
	return &ews.UpdateUserConfigurationResponse{ResponseMessage: ews.SuccessMessage()}
}

// DeleteUserConfiguration removes a configuration from its folder label.
// Deleting one that does not exist succeeds without touching the backend.
func (s *Service) DeleteUserConfiguration(ctx context.Context, caller model.UserInfo, req *ews.DeleteUserConfigurationRequest) *ews.DeleteUserConfigurationResponse {
	label, errMsg := s.resolveLabel(ctx, caller, req.UserConfigurationName)
	if errMsg != nil {
		return &ews.DeleteUserConfigurationResponse{ResponseMessage: *errMsg}
	}

	if label.DeleteAdditionalProperty(req.UserConfigurationName.Name) {
		if err := s.backend.UpdateItem(ctx, caller.UserID, label); err != nil {
			log.Error("exchange", "removing configuration %s of %s: %v", req.UserConfigurationName.Name, caller.UserID, err)
			msg := ews.ErrorMessage(ews.ErrorInternalServerError, err.Error())
			return &ews.DeleteUserConfigurationResponse{ResponseMessage: msg}
		}
	}
	return &ews.DeleteUserConfigurationResponse{ResponseMessage: ews.SuccessMessage()}
}
