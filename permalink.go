// Package permalink converts content file paths into canonical,
// URL-safe slugs for a personal blog/wiki content tree. It resolves
// the competing filesystem conventions the tree uses (date-prefixed
// blog posts, README-per-topic articles, generic pages) into stable
// identifiers that survive content reorganization.
//
// This package contains domain types, interfaces, and the pure slug
// core following Ben Johnson's Standard Package Layout. Implementations
// with external dependencies live in subdirectories named after their
// primary dependency (e.g., sqlite/, fs/, etree/).
package permalink
