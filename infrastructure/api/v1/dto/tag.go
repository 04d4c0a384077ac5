package dto

// TagData is the JSON shape of a tag.
type TagData struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	DescriptionFragmentID *int64 `json:"description_fragment_id,omitempty"`
}

// TagListResponse wraps a page of tags.
type TagListResponse struct {
	Data []TagData `json:"data"`
	Meta ListMeta  `json:"meta"`
}

// TaggingData is the JSON shape of a tag assignment.
type TaggingData struct {
	TagID      int64 `json:"tag_id"`
	TargetID   int64 `json:"target_id"`
	TargetType int   `json:"target_type"`
}

// TaggingListResponse wraps the assignments of one tag.
type TaggingListResponse struct {
	Data []TaggingData `json:"data"`
}
