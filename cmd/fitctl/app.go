package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fittrack/fittrack/internal/fitness"
	"github.com/fittrack/fittrack/pkg/fitclient"
	"github.com/fittrack/fittrack/pkg/photostore"
)

type app struct {
	client    *fitclient.Client
	sessions  *fitclient.SessionFile
	photoPath string
	out       io.Writer
	now       func() time.Time
}

func newApp(apiURL, sessionPath, photoPath string, out io.Writer) *app {
	return &app{
		client:    fitclient.New(apiURL),
		sessions:  fitclient.NewSessionFile(sessionPath),
		photoPath: photoPath,
		out:       out,
		now:       time.Now,
	}
}

// store returns a store for the saved session, loaded from the server.
func (a *app) store(ctx context.Context) (*fitclient.Store, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: run fitctl login first", fitclient.ErrNotLoggedIn)
	}
	store := fitclient.NewStore(a.client, session, a.sessions)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// session returns the saved session and points the client at its token.
func (a *app) session() (*fitclient.Session, error) {
	session, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: run fitctl login first", fitclient.ErrNotLoggedIn)
	}
	a.client.SetToken(session.Token)
	return session, nil
}

func (a *app) photos() (*photostore.Store, error) {
	return photostore.Open(a.photoPath)
}

func (a *app) today() string {
	return a.now().Format(fitness.DateLayout)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
