package status

import "github.com/arthur-teixeira/http-enum/argerr"

// ErrInvalidArgument matches, via errors.Is, every error returned by a strict
// lookup in this package.
var ErrInvalidArgument = argerr.ErrInvalidArgument

func invalidName(enum, name string) error {
	return argerr.NewName(enum, name)
}

func invalidValue(enum string, value int) error {
	return argerr.NewValue(enum, value)
}
