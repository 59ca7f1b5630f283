package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Locale struct {
	id   uint
	code string
	name string
}

// NewLocale validates code as a BCP 47 tag and stores its canonical form.
func NewLocale(code, name string) (*Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("locale code is required")
	}

	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("invalid locale code %q: %w", code, err)
	}

	if name == "" {
		name = code
	}

	return &Locale{code: tag.String(), name: name}, nil
}

// ReconstructLocale rebuilds a stored locale without re-validating its code.
func ReconstructLocale(id uint, code, name string) (*Locale, error) {
	if id == 0 {
		return nil, fmt.Errorf("locale ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("locale code is required")
	}
	return &Locale{id: id, code: code, name: name}, nil
}

func (l *Locale) ID() uint {
	return l.id
}

func (l *Locale) Code() string {
	return l.code
}

func (l *Locale) Name() string {
	return l.name
}

func (l *Locale) String() string {
	return l.code
}
