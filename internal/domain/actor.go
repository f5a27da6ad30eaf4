package domain

import "strings"

// ActorDescriptor is the request-supplied description of who is acting.
// Any field may be empty.
type ActorDescriptor struct {
	ID        int64
	Email     string
	Firstname string
	Lastname  string
	Password  string
}

// ActorInput is the classified form of an actor descriptor plus bearer token.
// It is one of Authenticated, IDOnly, Guest or Unknown.
type ActorInput interface {
	isActorInput()
}

// Authenticated carries a bearer token. Fallback is used when the token does
// not lead to an existing user.
type Authenticated struct {
	Token    string
	Fallback ActorInput
}

// IDOnly references an existing user by id.
type IDOnly struct {
	ID int64
}

// Guest is a non-authenticated actor with complete identifying information.
type Guest struct {
	Email     string
	Firstname string
	Lastname  string
	Password  string
}

// Unknown means no usable identity was supplied.
type Unknown struct{}

func (Authenticated) isActorInput() {}
func (IDOnly) isActorInput()        {}
func (Guest) isActorInput()         {}
func (Unknown) isActorInput()       {}

// ClassifyActor turns a bearer token and an optional descriptor into an
// ActorInput. A token always wins; otherwise a positive id, then a complete
// guest, then Unknown.
func ClassifyActor(token string, d *ActorDescriptor) ActorInput {
	base := classifyDescriptor(d)
	if strings.TrimSpace(token) != "" {
		return Authenticated{Token: strings.TrimSpace(token), Fallback: base}
	}
	return base
}

func classifyDescriptor(d *ActorDescriptor) ActorInput {
	if d == nil {
		return Unknown{}
	}
	if d.ID > 0 {
		return IDOnly{ID: d.ID}
	}

	email := NormalizeEmail(d.Email)
	first := strings.TrimSpace(d.Firstname)
	last := strings.TrimSpace(d.Lastname)
	if email == "" || first == "" || last == "" {
		return Unknown{}
	}

	return Guest{
		Email:     email,
		Firstname: first,
		Lastname:  last,
		Password:  d.Password,
	}
}
