package app

import (
	"context"

	"noted/internal/client"
	"noted/internal/types"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*types.Session, error)
	Register(ctx context.Context, name, email, password string) (*types.Session, error)
	UpdateProfile(ctx context.Context, req client.ProfileRequest) (*types.Session, error)
	SetToken(token string)
	ClearToken()
}

type NotesAPI interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	SearchNotes(ctx context.Context, query, category string) ([]*types.Note, error)
	ListCategories(ctx context.Context) ([]string, error)
	CreateNote(ctx context.Context, req client.NoteRequest) (*types.Note, error)
	UpdateNote(ctx context.Context, id string, req client.NoteRequest) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
	NoteEvents(ctx context.Context, userID string) (<-chan types.NoteEvent, func(), error)
}

// ClientAPI adapts *client.Client to the narrower interfaces the model
// consumes, so tests can substitute fakes.
type ClientAPI struct {
	client *client.Client
}

func NewClientAPI(c *client.Client) *ClientAPI {
	return &ClientAPI{client: c}
}

func (a *ClientAPI) Login(ctx context.Context, email, password string) (*types.Session, error) {
	return a.client.Login(ctx, email, password)
}

func (a *ClientAPI) Register(ctx context.Context, name, email, password string) (*types.Session, error) {
	return a.client.Register(ctx, name, email, password)
}

func (a *ClientAPI) UpdateProfile(ctx context.Context, req client.ProfileRequest) (*types.Session, error) {
	return a.client.UpdateProfile(ctx, req)
}

func (a *ClientAPI) SetToken(token string) {
	a.client.SetToken(token)
}

func (a *ClientAPI) ClearToken() {
	a.client.ClearToken()
}

func (a *ClientAPI) ListNotes(ctx context.Context) ([]*types.Note, error) {
	return a.client.ListNotes(ctx)
}

func (a *ClientAPI) SearchNotes(ctx context.Context, query, category string) ([]*types.Note, error) {
	return a.client.SearchNotes(ctx, query, category)
}

func (a *ClientAPI) ListCategories(ctx context.Context) ([]string, error) {
	return a.client.ListCategories(ctx)
}

func (a *ClientAPI) CreateNote(ctx context.Context, req client.NoteRequest) (*types.Note, error) {
	return a.client.CreateNote(ctx, req)
}

func (a *ClientAPI) UpdateNote(ctx context.Context, id string, req client.NoteRequest) (*types.Note, error) {
	return a.client.UpdateNote(ctx, id, req)
}

func (a *ClientAPI) DeleteNote(ctx context.Context, id string) error {
	return a.client.DeleteNote(ctx, id)
}

func (a *ClientAPI) NoteEvents(ctx context.Context, userID string) (<-chan types.NoteEvent, func(), error) {
	return a.client.NoteEvents(ctx, userID)
}
