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

// Package conf reads the service configuration from the environment.
package conf

import (
	"time"

	"github.com/eliona-smart-building-assistant/go-utils/common"
	"github.com/eliona-smart-building-assistant/go-utils/log"
	"github.com/joho/godotenv"
)

// Config is everything the service needs to run.
type Config struct {
	APIPort        string
	PimBaseURL     string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	RequestTimeout time.Duration
}

// Read loads a .env file when present and assembles the configuration.
// Missing optional values fall back to development defaults.
func Read() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("conf", "no .env file loaded: %v", err)
	}
	return Config{
		APIPort:        common.Getenv("API_SERVER_PORT", "3000"),
		PimBaseURL:     common.Getenv("PIM_BASE_URL", "http://localhost:8080"),
		TokenURL:       common.Getenv("PIM_TOKEN_URL", ""),
		ClientID:       common.Getenv("PIM_CLIENT_ID", ""),
		ClientSecret:   common.Getenv("PIM_CLIENT_SECRET", ""),
		RequestTimeout: timeout(),
	}
}

func timeout() time.Duration {
	raw := common.Getenv("PIM_REQUEST_TIMEOUT", "30s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn("conf", "invalid PIM_REQUEST_TIMEOUT %q, using 30s: %v", raw, err)
		return 30 * time.Second
	}
	return d
}
