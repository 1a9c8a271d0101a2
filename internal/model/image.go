package model

import "sort"

// Image is the program image: every unit of one load unit keyed by name.
type Image map[string]*Unit

// NewImage builds an image from a list of units. Later units replace earlier
// ones with the same name.
func NewImage(units ...*Unit) Image {
	image := make(Image, len(units))
	for _, u := range units {
		image[u.Name] = u
	}

	return image
}

// Add inserts a unit, returning false if the name is already taken.
func (img Image) Add(u *Unit) bool {
	if _, exists := img[u.Name]; exists {
		return false
	}

	img[u.Name] = u

	return true
}

// Names returns the unit names in sorted order.
func (img Image) Names() []string {
	names := make([]string, 0, len(img))
	for name := range img {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Sorted returns the units ordered by name.
func (img Image) Sorted() []*Unit {
	names := img.Names()

	units := make([]*Unit, 0, len(names))
	for _, name := range names {
		units = append(units, img[name])
	}

	return units
}
