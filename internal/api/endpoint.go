package api

import "strings"

// Paths served by every node and called by its peers.
const (
	PathNodeOwner         = "company/node-owner"
	PathImportShipment    = "shipment/rpc/import"
	PathValidations       = "validation/"
	PathRequestValidation = "validation/rpc/request-validation"
)

// Endpoint joins a company's base URL and a node path.
func Endpoint(baseURL, path string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + strings.TrimPrefix(path, "/")
}
