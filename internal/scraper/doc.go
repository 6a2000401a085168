// Package scraper provides HTTP fetching and HTML parsing for the
// Buscacursos course search page.
//
// The page has no stable schema: result rows carry their values positionally,
// booleans are localized SI/NO tokens, the timetable is a nested table using
// compact day:hour notation, and the academic unit owning a row is only
// recoverable from heading rows interleaved with the results. The parser maps
// each column through a fixed strategy table, expands timetables into one
// session per (day, hour) slot, and normalizes teacher names. Individual rows
// that fail to parse are dropped and logged; only an unparsable document
// fails a whole call.
package scraper
