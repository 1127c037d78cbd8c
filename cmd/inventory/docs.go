package main

// @title Inventory Service API
// @version 1.0
// @description Product catalogue with a stock audit log and CSV import/export, with logging, tracing and metrics

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Products
// @tag.description Product catalogue endpoints

// @tag.name Inventory
// @tag.description Stock history endpoints

// @tag.name Import/Export
// @tag.description CSV import and export

// @tag.name Health
// @tag.description Health check endpoints
