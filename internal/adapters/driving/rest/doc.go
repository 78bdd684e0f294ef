// Package rest exposes the product and location services over HTTP.
//
// Routes live under /api/v1 and require a bearer access token issued by
// /auth/signin or /auth/token. Responses carry HAL-style _links so clients
// can navigate between resources and pages without building URLs.
//
// Error responses share one shape:
//
//	{"timestamp": "...", "error": "Not Found", "message": "Product not found :: 85", "details": "uri=/api/v1/produto/85"}
package rest
