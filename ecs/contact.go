package ecs

import "github.com/milk9111/santaclimb/ecs/component"

// ContactPhase is the lifecycle stage of a contact pair within one step.
type ContactPhase uint8

const (
	// ContactBegin: the pair started touching during this step.
	ContactBegin ContactPhase = iota
	// ContactActive: the pair was touching before and still is.
	ContactActive
	// ContactEnd: the pair stopped touching during this step.
	ContactEnd
)

func (p ContactPhase) String() string {
	switch p {
	case ContactBegin:
		return "begin"
	case ContactActive:
		return "active"
	case ContactEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ContactEvent is one raw contact-pair report from the physics step.
type ContactEvent struct {
	A, B       Entity
	TagA, TagB component.ContactTag
	Phase      ContactPhase
}

// TagSet is a set of contact tags.
type TagSet uint8

func (s TagSet) Has(tag component.ContactTag) bool {
	return s&tagBit(tag) != 0
}

func (s TagSet) With(tag component.ContactTag) TagSet {
	return s | tagBit(tag)
}

// Tags lists the members in tag order.
func (s TagSet) Tags() []component.ContactTag {
	var out []component.ContactTag
	for _, tag := range component.ContactTags() {
		if s.Has(tag) {
			out = append(out, tag)
		}
	}
	return out
}

func tagBit(tag component.ContactTag) TagSet {
	if !tag.Known() {
		tag = component.TagUnclassified
	}
	return 1 << TagSet(tag)
}

// ContactSummary is the per-step classification of the tags touching one
// body. Collectibles lists the distinct collectible entities whose contact
// began this step.
type ContactSummary struct {
	Began        TagSet
	Active       TagSet
	Ended        TagSet
	Collectibles []Entity
}

// Touching reports whether tag began or continued touching this step.
func (s ContactSummary) Touching(tag component.ContactTag) bool {
	return s.Began.Has(tag) || s.Active.Has(tag)
}
