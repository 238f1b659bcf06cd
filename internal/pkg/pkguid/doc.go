// Package pkguid provides helpers for generating unique identifiers.
//
// Sessions are identified by UUIDv7 strings; uploaded files inside a session
// by Snowflake IDs rendered as decimal strings.
package pkguid
