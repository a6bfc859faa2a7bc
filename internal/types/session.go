package types

// Session is the authenticated identity returned by login/register and
// persisted across runs. Token is the bearer credential for all
// authenticated requests.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Merge copies non-empty fields of other into a copy of s. The server's
// profile-update response may omit fields it did not change.
func (s Session) Merge(other Session) Session {
	out := s
	if other.ID != "" {
		out.ID = other.ID
	}
	if other.Name != "" {
		out.Name = other.Name
	}
	if other.Email != "" {
		out.Email = other.Email
	}
	if other.Token != "" {
		out.Token = other.Token
	}
	return out
}
