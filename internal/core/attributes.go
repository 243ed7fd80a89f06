package core

import "strings"

// Attributes is the capability bitmask attached to every world entity.
// Each bit is an independent trait; an entity may hold any subset at once.
type Attributes uint32

// AttribNone is the empty mask. Checking or setting it is special-cased,
// see Has and Set.
const AttribNone Attributes = 0

const (
	AttribPlayer   Attributes = 1 << iota // Tracked by the camera, driven by input
	AttribParallax                        // Background layer, keeps its screen x
	AttribUI                              // Screen-anchored, never re-projected
	AttribPhysics                         // Integrated by the physics step
	AttribStatic                          // Solid scenery
	AttribText                            // Carries a text handle
)

var attribNames = []struct {
	bit  Attributes
	name string
}{
	{AttribPlayer, "player"},
	{AttribParallax, "parallax"},
	{AttribUI, "ui"},
	{AttribPhysics, "physics"},
	{AttribStatic, "static"},
	{AttribText, "text"},
}

// Has reports whether the mask carries trait.
// Has(AttribNone) is an equality test: it is true only for an empty mask.
func (a Attributes) Has(trait Attributes) bool {
	if trait == AttribNone {
		return a == AttribNone
	}
	return a&trait != 0
}

// Set ORs trait into the mask. Setting AttribNone resets the whole mask.
// There is no way to clear a single bit; only a full reset removes traits.
func (a *Attributes) Set(trait Attributes) {
	if trait == AttribNone {
		*a = AttribNone
		return
	}
	*a |= trait
}

// Reset clears every trait.
func (a *Attributes) Reset() {
	a.Set(AttribNone)
}

// String returns the trait names joined by '|', or "none".
func (a Attributes) String() string {
	if a == AttribNone {
		return "none"
	}
	var parts []string
	for _, n := range attribNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
