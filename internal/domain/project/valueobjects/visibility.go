package valueobjects

import "fmt"

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

var validVisibilities = map[Visibility]bool{
	VisibilityPublic:  true,
	VisibilityPrivate: true,
}

func NewVisibility(s string) (Visibility, error) {
	v := Visibility(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid project visibility: %q", s)
	}
	return v, nil
}

func (v Visibility) String() string {
	return string(v)
}

func (v Visibility) IsValid() bool {
	return validVisibilities[v]
}

func (v Visibility) IsPublic() bool {
	return v == VisibilityPublic
}
