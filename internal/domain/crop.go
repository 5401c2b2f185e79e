package domain

// ItemKindCrop is the only item kind that can occupy a board cell.
const ItemKindCrop = "CROP"

// Crop is a plantable item occupying exactly one board cell.
// A crop is exclusively owned by its cell: merges mutate the target crop's
// level in place and destroy the source crop.
type Crop struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Kind  string `json:"kind"`
}

// NewCrop creates a crop at the given level.
func NewCrop(id string, level int) *Crop {
	return &Crop{ID: id, Level: level, Kind: ItemKindCrop}
}
