package value

// ItemTag is a classification flag attached to an item by the API
// ("noFlea", "gun", "quest", ...).
type ItemTag string

const (
	TagNoFlea ItemTag = "noFlea"
	TagGun    ItemTag = "gun"
	TagQuest  ItemTag = "quest"
	TagDogtag ItemTag = "dogtag"
	TagPreset ItemTag = "preset"
)

type ItemTags []ItemTag

func (t ItemTags) Has(tag ItemTag) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}
