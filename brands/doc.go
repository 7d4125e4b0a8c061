// Package brands provides the built-in branded validators: named
// refinements over the string and number primitives (Email, UUID, Port,
// and friends). Each brand carries default diagnostic metadata (code,
// message, suggestion) registered under its name, consulted by the error
// formatter when no custom message binding applies.
package brands
