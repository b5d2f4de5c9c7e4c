package main

// General API documentation for swaggo. Generate with `swag init -g cmd/croprecd/docs.go`.
//
// @title           croprecd API
// @version         1.0.0
// @description     Crop recommendation from soil and climate measurements.
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
