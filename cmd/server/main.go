package main

// @title           Humidor API
// @version         1.0
// @description     Personal cigar collection and tasting journal
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the owner token
func main() {
	Execute()
}
