package dump

import (
	"fmt"
	"strconv"
	"strings"
)

// FragmentRecord is a typed fragment element. Timestamps stay as raw legacy
// text; normalising them is the importer's concern.
type FragmentRecord struct {
	ID        int64
	Title     string
	Content   string
	Creator   string
	CreatedAt string
	UpdatedAt string
}

// TagRecord is a typed tag element.
type TagRecord struct {
	ID                    int64
	Name                  string
	DescriptionFragmentID *int64
}

// TaggingRecord is a typed tagging element. TargetID and TargetType travel
// together; the id means nothing without the type discriminator.
type TaggingRecord struct {
	TagID      int64
	TargetID   int64
	TargetType int
}

// RelationRecord is a typed fragment_relation element.
type RelationRecord struct {
	FromID   int64
	ToID     int64
	Priority int
	TwoWay   bool
}

// DecodeFragment coerces a fragment record. Only the legacy id is required;
// every other attribute defaults to absent.
func DecodeFragment(rec Record) (FragmentRecord, error) {
	id, err := requiredInt64(rec, "fragment_id")
	if err != nil {
		return FragmentRecord{}, err
	}
	return FragmentRecord{
		ID:        id,
		Title:     rec["title"],
		Content:   rec["content"],
		Creator:   rec["creator"],
		CreatedAt: rec["creation_datetime"],
		UpdatedAt: rec["update_datetime"],
	}, nil
}

// DecodeTag coerces a tag record. The legacy tag id is required; the
// describing fragment id is optional.
func DecodeTag(rec Record) (TagRecord, error) {
	id, err := requiredInt64(rec, "tag_id")
	if err != nil {
		return TagRecord{}, err
	}
	return TagRecord{
		ID:                    id,
		Name:                  rec["tag_name"],
		DescriptionFragmentID: optionalInt64(rec, "fragment_id"),
	}, nil
}

// DecodeTagging coerces a tagging record; all three attributes are required.
func DecodeTagging(rec Record) (TaggingRecord, error) {
	tagID, err := requiredInt64(rec, "tag_id")
	if err != nil {
		return TaggingRecord{}, err
	}
	targetID, err := requiredInt64(rec, "target_id")
	if err != nil {
		return TaggingRecord{}, err
	}
	targetType, err := requiredInt64(rec, "target_type")
	if err != nil {
		return TaggingRecord{}, err
	}
	return TaggingRecord{
		TagID:      tagID,
		TargetID:   targetID,
		TargetType: int(targetType),
	}, nil
}

// DecodeRelation coerces a fragment_relation record. Both endpoint ids are
// required; priority defaults to 0 and the two_way token to false.
func DecodeRelation(rec Record) (RelationRecord, error) {
	fromID, err := requiredInt64(rec, "from_id")
	if err != nil {
		return RelationRecord{}, err
	}
	toID, err := requiredInt64(rec, "to_id")
	if err != nil {
		return RelationRecord{}, err
	}

	priority := 0
	if p := optionalInt64(rec, "priority"); p != nil {
		priority = int(*p)
	}

	return RelationRecord{
		FromID:   fromID,
		ToID:     toID,
		Priority: priority,
		TwoWay:   rec["two_way"] == "true",
	}, nil
}

func requiredInt64(rec Record, key string) (int64, error) {
	raw, ok := rec[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("attribute %s: missing", key)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %q is not an integer", key, raw)
	}
	return v, nil
}

// optionalInt64 returns nil for an absent or unparseable value: optional
// integers default to absent rather than failing the record.
func optionalInt64(rec Record, key string) *int64 {
	raw, ok := rec[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
