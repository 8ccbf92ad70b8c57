// Package mpheader converts the HTML rendering of the MotoPlus SDK reference
// manual into a single C header describing the SDK's types and function
// prototypes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, repair/, emit/).
package mpheader
