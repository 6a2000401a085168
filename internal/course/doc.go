// Package course defines the plain data types produced by the Buscacursos
// scraper: course sections, their timetables in compact and expanded form,
// academic terms, and snapshot diffing for tracking sections across scrapes.
//
// Values are created fresh per scrape and never mutated afterward; every
// other package treats them as read-only.
package course
