package models

// ActorKind tags the identity resolved for the current request.
type ActorKind string

const (
	// ActorGuest is an unauthenticated visitor.
	ActorGuest ActorKind = "guest"
	// ActorOrganizer is the privileged identity able to manage all events
	// and moderate comments.
	ActorOrganizer ActorKind = "organizer"
	// ActorUser is a self-service registered user.
	ActorUser ActorKind = "user"
	// ActorRegistrant is an anonymous visitor identified only by the email
	// used to register attendance.
	ActorRegistrant ActorKind = "registrant"
)

// OrganizerMarker is the created_by value recorded for organizer-created
// events and for legacy rows that predate the created_by column.
const OrganizerMarker = "admin"

// Actor is the identity resolved once per request and passed explicitly
// into every service operation. Exactly one kind is set; the identifying
// fields are populated according to the kind.
type Actor struct {
	Kind     ActorKind `json:"kind"`
	UserID   int64     `json:"user_id,omitempty"`
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
}

func Guest() Actor {
	return Actor{Kind: ActorGuest}
}

func (a Actor) IsOrganizer() bool {
	return a.Kind == ActorOrganizer
}

func (a Actor) IsUser() bool {
	return a.Kind == ActorUser
}

// RegistrationEmail returns the email an actor views registrations under.
// Registered users and anonymous registrants both track registrations by
// email; other kinds have none.
func (a Actor) RegistrationEmail() string {
	switch a.Kind {
	case ActorUser, ActorRegistrant:
		return a.Email
	default:
		return ""
	}
}

// CreatedByValue returns the created_by attribution recorded on events
// published by this actor. Only organizers and registered users may
// publish, so other kinds return false.
func (a Actor) CreatedByValue() (string, bool) {
	switch a.Kind {
	case ActorOrganizer:
		return OrganizerMarker, true
	case ActorUser:
		return a.Email, true
	default:
		return "", false
	}
}
