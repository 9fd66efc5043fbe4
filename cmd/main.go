package main

import "room-booking/cmd/cli"

// @title           room-booking
// @version         1.0
// @description     Hourly place booking with full-day pricing, cooldown-aware availability and payment polling.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cli.Execute()
}
