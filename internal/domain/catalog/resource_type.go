package catalog

import "auction-house/internal/pkg/errs"

// ResourceType is the kind of droplet a client can hold. Each type carries a
// fixed unit price.
type ResourceType string

const (
	TypeSlow ResourceType = "Slow"
	TypeFast ResourceType = "Fast"
)

func (t ResourceType) String() string {
	return string(t)
}

func (t ResourceType) IsValid() bool {
	switch t {
	case TypeSlow, TypeFast:
		return true
	default:
		return false
	}
}

func (t ResourceType) Price() int64 {
	switch t {
	case TypeSlow:
		return 20
	case TypeFast:
		return 40
	default:
		return 0
	}
}

// All lists the known types in display order.
func All() []ResourceType {
	return []ResourceType{TypeSlow, TypeFast}
}

// ParseResourceType owns the parsing of type names handed in by the session
// layer. Malformed names are a typed error, never a panic.
func ParseResourceType(s string) (ResourceType, error) {
	t := ResourceType(s)
	if !t.IsValid() {
		return "", errs.ErrInvalidResourceType
	}
	return t, nil
}
