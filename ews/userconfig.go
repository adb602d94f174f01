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

// UserConfigurationName identifies a configuration by name and folder.
// Exactly one of the folder references is expected; when several are
// supplied the first one in declaration order wins.
type UserConfigurationName struct {
	Name                string               `xml:"Name,attr"`
	DistinguishedFolder *DistinguishedFolder `xml:"DistinguishedFolderId,omitempty"`
	FolderID            *FolderID            `xml:"FolderId,omitempty"`
	AddressListID       *AddressListID       `xml:"AddressListId,omitempty"`
}

// AddressListID references an address list hosting a configuration.
type AddressListID struct {
	ID string `xml:"Id,attr"`
}

// UserConfiguration is a named, folder-scoped property bag with four
// optional facets. BinaryData and XMLData are base64 on the wire.
type UserConfiguration struct {
	UserConfigurationName UserConfigurationName        `xml:"UserConfigurationName"`
	ItemID                *ItemID                      `xml:"ItemId,omitempty"`
	Dictionary            *UserConfigurationDictionary `xml:"Dictionary,omitempty"`
	XMLData               *string                      `xml:"XmlData,omitempty"`
	BinaryData            *string                      `xml:"BinaryData,omitempty"`
}

// UserConfigurationDictionary is the key/value facet.
type UserConfigurationDictionary struct {
	Entries []DictionaryEntry `xml:"DictionaryEntry"`
}

// DictionaryEntry is a single key/value pair.
type DictionaryEntry struct {
	Key   DictionaryObject `xml:"DictionaryKey"`
	Value DictionaryObject `xml:"DictionaryValue"`
}

// DictionaryObject is a typed dictionary key or value.
type DictionaryObject struct {
	Type  string `xml:"Type"`
	Value string `xml:"Value"`
}

// Map flattens the dictionary into plain key/value strings.
func (d *UserConfigurationDictionary) Map() map[string]string {
	if d == nil {
		return nil
	}
	m := make(map[string]string, len(d.Entries))
	for _, e := range d.Entries {
		m[e.Key.Value] = e.Value.Value
	}
	return m
}

// DictionaryFromMap builds the wire shape from plain key/value strings.
func DictionaryFromMap(m map[string]string) *UserConfigurationDictionary {
	if m == nil {
		return nil
	}
	d := &UserConfigurationDictionary{Entries: make([]DictionaryEntry, 0, len(m))}
	for k, v := range m {
		d.Entries = append(d.Entries, DictionaryEntry{
			Key:   DictionaryObject{Type: "String", Value: k},
			Value: DictionaryObject{Type: "String", Value: v},
		})
	}
	return d
}

// GetUserConfigurationRequest reads a configuration, projecting only the
// requested facets.
type GetUserConfigurationRequest struct {
	UserConfigurationName       UserConfigurationName       `xml:"UserConfigurationName"`
	UserConfigurationProperties UserConfigurationProperties `xml:"UserConfigurationProperties"`
}

// GetUserConfigurationResponse returns the projected configuration. A
// missing configuration is not an error: the facets are simply absent.
type GetUserConfigurationResponse struct {
	XMLName           xml.Name           `xml:"GetUserConfigurationResponse"`
	ResponseMessage   ResponseMessage    `xml:"ResponseMessage"`
	UserConfiguration *UserConfiguration `xml:"UserConfiguration,omitempty"`
}

// CreateUserConfigurationRequest stores a configuration under its name.
type CreateUserConfigurationRequest struct {
	UserConfiguration UserConfiguration `xml:"UserConfiguration"`
}

// CreateUserConfigurationResponse carries the status envelope only.
type CreateUserConfigurationResponse struct {
	XMLName         xml.Name        `xml:"CreateUserConfigurationResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
}

// UpdateUserConfigurationRequest replaces a stored configuration wholesale.
type UpdateUserConfigurationRequest struct {
	UserConfiguration UserConfiguration `xml:"UserConfiguration"`
}

// UpdateUserConfigurationResponse carries the status envelope only.
type UpdateUserConfigurationResponse struct {
	XMLName         xml.Name        `xml:"UpdateUserConfigurationResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
}

// DeleteUserConfigurationRequest removes a configuration by name.
type DeleteUserConfigurationRequest struct {
	UserConfigurationName UserConfigurationName `xml:"UserConfigurationName"`
}

// DeleteUserConfigurationResponse carries the status envelope only.
type DeleteUserConfigurationResponse struct {
	XMLName         xml.Name        `xml:"DeleteUserConfigurationResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
}
