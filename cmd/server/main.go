package main

// @title           Gardenlog API
// @version         1.0
// @description     Personal gardening tracker: plantings, growth phases, harvests, reports
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a device token
func main() {
	Execute()
}
