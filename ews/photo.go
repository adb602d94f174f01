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

// GetUserPhotoRequest fetches the photo of a mailbox at a requested size.
type GetUserPhotoRequest struct {
	Email         string        `xml:"Email"`
	SizeRequested UserPhotoSize `xml:"SizeRequested"`
}

// GetUserPhotoResponse returns the photo bytes base64-encoded. HasChanged
// is always false: no change detection is implemented.
type GetUserPhotoResponse struct {
	XMLName         xml.Name        `xml:"GetUserPhotoResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
	HasChanged      bool            `xml:"HasChanged"`
	PictureData     string          `xml:"PictureData,omitempty"`
}

// SetUserPhotoRequest uploads a photo for a mailbox.
type SetUserPhotoRequest struct {
	Email   string `xml:"Email"`
	Content string `xml:"Content"`
}

// SetUserPhotoResponse carries the status envelope only.
type SetUserPhotoResponse struct {
	XMLName         xml.Name        `xml:"SetUserPhotoResponse"`
	ResponseMessage ResponseMessage `xml:"ResponseMessage"`
}
