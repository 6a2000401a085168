// Package storage persists scrape snapshots as JSON files so consecutive
// runs can be diffed for new sections and vacancy changes.
package storage
