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

// Package pim is the client of the backend PIM service, the system of
// record for mailbox data. All durable state lives there; this package
// only moves it.
package pim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HannaPleshko/middleware-sub004/model"
	"github.com/friendsofgo/errors"
	"golang.org/x/oauth2/clientcredentials"
)

// Client talks to the PIM REST API.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient builds a PIM client authenticating with client credentials.
// Without a token URL the client sends requests unauthenticated, which is
// how local development setups run.
func NewClient(baseURL, tokenURL, clientID, clientSecret string, timeout time.Duration) *Client {
	httpClient := &http.Client{}
	if tokenURL != "" {
		oauth2Config := clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = oauth2Config.Client(context.Background())
	}
	httpClient.Timeout = timeout
	return &Client{
		BaseURL: baseURL,
		Client:  httpClient,
	}
}

// GetOutOfOffice fetches the OOF record of a user. A missing record is not
// an error: it returns (nil, nil).
func (c *Client) GetOutOfOffice(ctx context.Context, userID string) (*OutOfOffice, error) {
	var ooo OutOfOffice
	err := c.doJSON(ctx, http.MethodGet, "/api/pim/v1/ooo/"+url.PathEscape(userID), nil, nil, &ooo)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ooo, nil
}

// UpdateOutOfOffice replaces the OOF record of the payload's owner.
func (c *Client) UpdateOutOfOffice(ctx context.Context, update OutOfOfficeUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/api/pim/v1/ooo/"+url.PathEscape(update.Owner), nil, update, nil)
}

// GetLabel resolves a folder reference to the owner's label entity.
func (c *Client) GetLabel(ctx context.Context, owner string, ref model.FolderReference) (*Label, error) {
	var path string
	switch ref.Kind {
	case model.RefFolderID:
		path = "/api/pim/v1/labels/byid/" + url.PathEscape(ref.ID)
	case model.RefAddressList:
		path = "/api/pim/v1/labels/addresslist/" + url.PathEscape(ref.ID)
	default:
		path = "/api/pim/v1/labels/" + url.PathEscape(ref.ID)
	}

	query := url.Values{}
	query.Set("mailbox", owner)

	var label Label
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateItem persists a modified label back to the owner's store.
func (c *Client) UpdateItem(ctx context.Context, owner string, label *Label) error {
	query := url.Values{}
	query.Set("mailbox", owner)
	return c.doJSON(ctx, http.MethodPut, "/api/pim/v1/items/"+url.PathEscape(label.ID), query, label, nil)
}

// GetAvatar fetches the raw avatar bytes of a mailbox at the given size.
func (c *Client) GetAvatar(ctx context.Context, email string, height, width int) ([]byte, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("height", strconv.Itoa(height))
	query.Set("width", strconv.Itoa(width))

	return c.doRaw(ctx, http.MethodGet, "/api/pim/v1/avatar", query)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	respBody, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "unmarshalling %s %s response", method, path)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	return c.doRequest(ctx, method, path, query, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	requestURL := c.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "marshalling %s %s request", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("%s %s: %s", method, path, bytes.TrimSpace(respBody)),
		}
	}

	return respBody, nil
}
