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

import (
	"net/http/httptest"
	"testing"
)

func TestUserFromRequest(t *testing.T) {
	req := httptest.NewRequest("POST", "/EWS/Exchange.asmx", nil)
	req.SetBasicAuth("alice@example.com", "secret")
	if got := UserFromRequest(req); got.UserID != "alice@example.com" {
		t.Errorf("UserID = %q", got.UserID)
	}

	anon := httptest.NewRequest("POST", "/EWS/Exchange.asmx", nil)
	if got := UserFromRequest(anon); got.UserID != "" {
		t.Errorf("UserID = %q, want empty for unauthenticated", got.UserID)
	}
}
