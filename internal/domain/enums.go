package domain

// ServiceState is the publication state of a listing.
type ServiceState string

const (
	ServiceStateActive    ServiceState = "ACTIVE"
	ServiceStateInactive  ServiceState = "INACTIVE"
	ServiceStateSuspended ServiceState = "SUSPENDED"
)

func (s ServiceState) String() string { return string(s) }

func (s ServiceState) IsValid() bool {
	switch s {
	case ServiceStateActive, ServiceStateInactive, ServiceStateSuspended:
		return true
	}
	return false
}

// Role is the access role of a user.
type Role string

const (
	RoleStandardUser Role = "STANDARD_USER"
	RoleProfessional Role = "PROFESSIONAL"
	RoleAdmin        Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStandardUser, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

// ActorKind labels how a consultation actor was resolved. Used for metrics.
type ActorKind string

const (
	ActorKindAuthenticated ActorKind = "authenticated"
	ActorKindID            ActorKind = "id"
	ActorKindGuest         ActorKind = "guest"
	ActorKindAnonymous     ActorKind = "anonymous"
)
