package component

// ContactTag classifies a body's role for contact resolution. A body gets
// exactly one tag at spawn and keeps it.
type ContactTag uint8

const (
	TagUnclassified ContactTag = iota
	TagGround
	TagHazard
	TagCollectible
	TagClimbable

	tagCount
)

var contactTagNames = [...]string{
	TagUnclassified: "unclassified",
	TagGround:       "ground",
	TagHazard:       "hazard",
	TagCollectible:  "collectible",
	TagClimbable:    "climbable",
}

func (t ContactTag) String() string {
	if !t.Known() {
		return "unclassified"
	}
	return contactTagNames[t]
}

// Known reports whether t is one of the declared tags.
func (t ContactTag) Known() bool {
	return t < tagCount
}

// ContactTags lists every declared tag.
func ContactTags() []ContactTag {
	return []ContactTag{TagUnclassified, TagGround, TagHazard, TagCollectible, TagClimbable}
}

// levelObjectTags maps level object names to the tag of the body they spawn.
var levelObjectTags = map[string]ContactTag{
	"enemy-spawn": TagHazard,
	"star":        TagCollectible,
	"ladder":      TagClimbable,
}

// ParseContactTag maps a level object name to a tag. Tag names themselves
// are accepted too. Unknown names are unclassified.
func ParseContactTag(s string) ContactTag {
	if tag, ok := levelObjectTags[s]; ok {
		return tag
	}
	for i, name := range contactTagNames {
		if name == s {
			return ContactTag(i)
		}
	}
	return TagUnclassified
}

// ContactTagged carries a body's contact tag.
type ContactTagged struct {
	Tag ContactTag
}

var ContactTaggedComponent = NewComponent[ContactTagged]()
