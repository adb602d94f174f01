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

package model

import "net/http"

// UserInfo is the authenticated caller of a request. It is resolved once
// per request and passed explicitly to every handler; nothing here is
// shared between requests.
type UserInfo struct {
	// UserID is the caller's primary SMTP address, compared against the
	// mailbox named in requests for ownership checks.
	UserID string
}

// UserFromRequest resolves the caller from an inbound request. Resolution
// never fails; an unauthenticated request yields an empty identity that no
// mailbox address will match.
func UserFromRequest(r *http.Request) UserInfo {
	user, _, _ := r.BasicAuth()
	return UserInfo{UserID: user}
}

// FolderRefKind discriminates the folder-reference variants.
type FolderRefKind string

const (
	RefDistinguished FolderRefKind = "distinguished"
	RefFolderID      FolderRefKind = "folder"
	RefAddressList   FolderRefKind = "addresslist"
)

// FolderReference names the folder a user configuration lives on, by one
// of: distinguished folder id, folder id, or address-list id.
type FolderReference struct {
	Kind FolderRefKind
	ID   string
}

// DistinguishedFolderRef references a well-known folder by name.
func DistinguishedFolderRef(name string) FolderReference {
	return FolderReference{Kind: RefDistinguished, ID: name}
}

// FolderIDRef references a concrete folder by id.
func FolderIDRef(id string) FolderReference {
	return FolderReference{Kind: RefFolderID, ID: id}
}

// AddressListRef references an address list by id.
func AddressListRef(id string) FolderReference {
	return FolderReference{Kind: RefAddressList, ID: id}
}
