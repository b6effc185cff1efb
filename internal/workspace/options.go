package workspace

// Committer identifies the author of the next commit.
type Committer struct {
	Name  string
	Email string
}

// IsZero reports whether no identity has been set.
func (c Committer) IsZero() bool {
	return c.Name == "" && c.Email == ""
}

// String renders the identity in the conventional "Name <email>" form.
func (c Committer) String() string {
	return c.Name + " <" + c.Email + ">"
}

// InitOptions configures the init lifecycle phase. It is currently empty;
// backends decide between clone and fresh-init from their own remote state.
type InitOptions struct{}

// SaveOptions configures a single save: one commit and at most one push.
// Backends ignore fields they have no use for.
type SaveOptions struct {
	// Message is the commit message.
	Message string

	// Committer overrides the command's committer identity when set.
	Committer Committer

	// Username and Password are injected into the push target URL when
	// both are present. They are never persisted.
	Username string
	Password string
}
