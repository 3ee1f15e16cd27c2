// Package builder owns the form being assembled. Collection holds the
// ordered committed fields and hands out editing sessions; Session mediates
// every edit against a detached working copy and pushes explicit Update
// messages forward when state should reach the collection. Nothing is pulled
// back: a session never observes the collection after it is seeded.
package builder
