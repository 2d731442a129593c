// Package faleproxy provides a content-transformation proxy. Given a target
// URL it retrieves the HTML document, rewrites every occurrence of "Yale" in
// human-readable text to "Fale", and returns the rewritten document together
// with its title.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gin/, rod/).
package faleproxy
