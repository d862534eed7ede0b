// Package api defines the settleup.v1 wire messages.
//
// Messages are plain structs encoded as JSON. Monetary amounts travel as
// decimal strings so no precision is lost between client and server.
package api
