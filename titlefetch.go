// Package titlefetch fetches a web page over HTTP under strict resource
// bounds and extracts its title.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, yaml/).
package titlefetch
