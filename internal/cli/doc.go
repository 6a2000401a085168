// Package cli implements the buscacursos command line interface: searching
// sections, listing terms, diffing scrapes against saved snapshots, and
// exporting schedules as iCalendar files.
package cli
