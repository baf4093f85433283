// Package fitclient talks to the FitTrack API and keeps a local copy of the
// user's records.
//
// Client is a thin typed wrapper over the HTTP endpoints. Store layers the
// local state on top: it loads the three collections, posts new entries and
// merges the server's answer back, keeping at most one workout and one diet
// log per date.
package fitclient
