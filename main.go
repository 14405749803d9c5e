// Package main provides the entry point for the catalogue API.
//
//	@title			Facility Inventory Catalogue API
//	@version		1.0
//	@description	Hierarchical inventory catalogue: catalogue categories, catalogue items, and physical items, with property-schema propagation and tree-integrity enforcement.
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
package main

import (
	"github.com/facilityinv/catalogue-api/cmd"
)

func main() {
	cmd.Execute()
}
