// Package display shows rendered frames, replacing whatever frame was
// shown before.
package display

import "errors"

// Frame is one rendered figure.
type Frame struct {
	Episodes    int
	ContentType string
	Data        []byte
}

// Display clears the previously shown frame and shows f in its place.
type Display interface {
	Show(f Frame) error
}

// Multi shows every frame on each of its displays.
type Multi []Display

func (m Multi) Show(f Frame) error {
	var errs []error
	for _, d := range m {
		if err := d.Show(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
