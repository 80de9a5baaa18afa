package errors

import "fmt"

var (
	ErrEmptyName    = fmt.Errorf("hero name is empty after trimming")
	ErrHeroNotFound = fmt.Errorf("hero not found")
	ErrBadStatus    = fmt.Errorf("unexpected http status")
)
