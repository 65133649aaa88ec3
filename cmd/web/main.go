package main

import "parttime_backend/internal/app"

// @title Part-time Jobs API
// @version 1.0
// @description Marketplace API for short-term student jobs: accounts, job postings with filtered search, and the application lifecycle between students and employers.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /api/v1
func main() {
	app.Run()
}
