package main

import (
	_ "decidir_refunds/docs"
	"decidir_refunds/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Decidir Refunds API
// @version         1.0
// @description     Refund listing, creation and annulment against the Decidir payment gateway, with a DynamoDB audit trail.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
