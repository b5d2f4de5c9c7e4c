//go:build swagger

package main

// Registers the generated OpenAPI document served by /swagger/doc.json.
import _ "croprecd/docs"
