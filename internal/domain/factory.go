package domain

import "errors"

// Factory is the common start and end point of every route.
type Factory struct {
	Name     string
	Location Coordinates
}

func (f Factory) Validate() error {
	if f.Name == "" {
		return errors.New("factory: name must be non-empty")
	}
	return f.Location.Validate()
}
