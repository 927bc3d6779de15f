// Package pagerec extracts structured records from saved HTML snapshots of
// social-network and job-board pages. Each extractor reads one page and
// produces one normalized record: a person profile, a company page or a job
// posting.
//
// This package contains domain types, interfaces and the markup-independent
// heuristics (text cleaning, date ranges, education ranking, duplicate
// detection) following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, difflib/, trafilatura/).
package pagerec
