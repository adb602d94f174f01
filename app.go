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

package main

import (
	"net/http"

	"github.com/HannaPleshko/middleware-sub004/conf"
	"github.com/HannaPleshko/middleware-sub004/exchange"
	"github.com/HannaPleshko/middleware-sub004/pim"
	"github.com/HannaPleshko/middleware-sub004/soap"
	utilshttp "github.com/eliona-smart-building-assistant/go-utils/http"
	"github.com/eliona-smart-building-assistant/go-utils/log"
)

// newAPIHandler assembles the serving chain: PIM client, operation facade,
// SOAP endpoint, CORS wrapper.
func newAPIHandler(config conf.Config) http.Handler {
	backend := pim.NewClient(config.PimBaseURL, config.TokenURL, config.ClientID, config.ClientSecret, config.RequestTimeout)
	return utilshttp.NewCORSEnabledHandler(
		soap.NewHandler(
			exchange.NewFacade(exchange.NewService(backend))))
}

// listenApi starts the API server and listens for requests.
func listenApi(config conf.Config) {
	log.Info("main", "listening on port %s", config.APIPort)
	err := http.ListenAndServe(":"+config.APIPort, newAPIHandler(config))
	log.Fatal("main", "API server: %v", err)
}

func main() {
	listenApi(conf.Read())
}
