package client

import "noted/internal/types"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest updates the signed-in user. Password is optional; empty
// means keep the current one.
type ProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// NoteRequest is the create/update payload. The server assigns identity and
// timestamps on the way back.
type NoteRequest struct {
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	Category  string              `json:"category"`
	Publicity types.NotePublicity `json:"publicity"`
}
