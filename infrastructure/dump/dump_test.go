package dump

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `<?xml version="1.0" encoding="UTF-8"?>
<rdb-dump>
  <fragment fragment_id="1" title="Intro" content="Hello" creator="alice"
            creation_datetime="2009-03-14 09:30:00" update_datetime="2009-03-15 10:00:00.123456"/>
  <fragment fragment_id="2" title="Second" content="" creator=""/>
  <tag tag_id="5" tag_name="work" fragment_id="1"/>
  <tagging tag_id="5" target_id="1" target_type="2"/>
  <fragment_relation from_id="1" to_id="2" priority="3" two_way="true"/>
</rdb-dump>`

func TestParse(t *testing.T) {
	manifest, err := Parse(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	assert.Len(t, manifest.Fragments(), 2)
	assert.Len(t, manifest.Tags(), 1)
	assert.Len(t, manifest.Taggings(), 1)
	assert.Len(t, manifest.Relations(), 1)

	first := manifest.Fragments()[0]
	assert.Equal(t, "1", first["fragment_id"])
	assert.Equal(t, "Intro", first["title"])
	assert.Equal(t, "alice", first["creator"])
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("<rdb-dump><fragment"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestParse_Empty(t *testing.T) {
	manifest, err := Parse(strings.NewReader("<rdb-dump/>"))
	require.NoError(t, err)
	assert.Empty(t, manifest.Fragments())
	assert.Empty(t, manifest.Tags())
	assert.Empty(t, manifest.Taggings())
	assert.Empty(t, manifest.Relations())
}

func TestDecodeFragment(t *testing.T) {
	rec := Record{
		"fragment_id":       "42",
		"title":             "Title",
		"content":           "Body",
		"creator":           "bob",
		"creation_datetime": "2010-01-02 03:04:05",
	}

	f, err := DecodeFragment(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(42), f.ID)
	assert.Equal(t, "Title", f.Title)
	assert.Equal(t, "Body", f.Content)
	assert.Equal(t, "bob", f.Creator)
	assert.Equal(t, "2010-01-02 03:04:05", f.CreatedAt)
	assert.Empty(t, f.UpdatedAt)
}

func TestDecodeFragment_MissingID(t *testing.T) {
	_, err := DecodeFragment(Record{"title": "no id"})
	require.Error(t, err)

	_, err = DecodeFragment(Record{"fragment_id": "abc"})
	require.Error(t, err)
}

func TestDecodeTag(t *testing.T) {
	tag, err := DecodeTag(Record{"tag_id": "5", "tag_name": "work", "fragment_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), tag.ID)
	assert.Equal(t, "work", tag.Name)
	require.NotNil(t, tag.DescriptionFragmentID)
	assert.Equal(t, int64(1), *tag.DescriptionFragmentID)
}

func TestDecodeTag_OptionalDescription(t *testing.T) {
	tag, err := DecodeTag(Record{"tag_id": "5", "tag_name": "work"})
	require.NoError(t, err)
	assert.Nil(t, tag.DescriptionFragmentID)

	// A garbled optional value degrades to absent instead of failing.
	tag, err = DecodeTag(Record{"tag_id": "5", "tag_name": "work", "fragment_id": "junk"})
	require.NoError(t, err)
	assert.Nil(t, tag.DescriptionFragmentID)
}

func TestDecodeTagging(t *testing.T) {
	g, err := DecodeTagging(Record{"tag_id": "5", "target_id": "1", "target_type": "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), g.TagID)
	assert.Equal(t, int64(1), g.TargetID)
	assert.Equal(t, 2, g.TargetType)

	_, err = DecodeTagging(Record{"tag_id": "5", "target_id": "1"})
	require.Error(t, err)
}

func TestDecodeRelation(t *testing.T) {
	r, err := DecodeRelation(Record{"from_id": "1", "to_id": "2", "priority": "3", "two_way": "true"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.FromID)
	assert.Equal(t, int64(2), r.ToID)
	assert.Equal(t, 3, r.Priority)
	assert.True(t, r.TwoWay)
}

func TestDecodeRelation_Defaults(t *testing.T) {
	r, err := DecodeRelation(Record{"from_id": "1", "to_id": "2"})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Priority)
	assert.False(t, r.TwoWay)

	// Only the literal "true" token marks a relation as two-way.
	r, err = DecodeRelation(Record{"from_id": "1", "to_id": "2", "two_way": "TRUE"})
	require.NoError(t, err)
	assert.False(t, r.TwoWay)

	_, err = DecodeRelation(Record{"from_id": "1"})
	require.Error(t, err)
}
