// Package persistence provides GORM-backed storage for fragbase.
package persistence

import (
	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/domain/tag"
	"github.com/fragbase/fragbase/domain/user"
)

// UserMapper maps between domain User and UserModel.
type UserMapper struct{}

// ToDomain converts a UserModel to a domain User.
func (m UserMapper) ToDomain(e UserModel) user.User {
	return user.Reconstruct(e.ID, e.Username, e.Role)
}

// ToModel converts a domain User to a UserModel.
func (m UserMapper) ToModel(u user.User) UserModel {
	return UserModel{
		ID:       u.ID(),
		Username: u.Username(),
		Role:     u.Role(),
	}
}

// FragmentMapper maps between domain Fragment and FragmentModel.
type FragmentMapper struct{}

// ToDomain converts a FragmentModel to a domain Fragment.
func (m FragmentMapper) ToDomain(e FragmentModel) fragment.Fragment {
	return fragment.Reconstruct(
		e.ID,
		stringValue(e.Title),
		stringValue(e.Content),
		e.CreatedAt,
		e.UpdatedAt,
		e.CreatorID,
		e.OriginID,
		stringValue(e.FileName),
	)
}

// ToModel converts a domain Fragment to a FragmentModel.
func (m FragmentMapper) ToModel(f fragment.Fragment) FragmentModel {
	return FragmentModel{
		ID:        f.ID(),
		Title:     stringPtr(f.Title()),
		Content:   stringPtr(f.Content()),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
		CreatorID: f.CreatorID(),
		OriginID:  f.OriginID(),
		FileName:  stringPtr(f.FileName()),
	}
}

// TagMapper maps between domain Tag and TagModel.
type TagMapper struct{}

// ToDomain converts a TagModel to a domain Tag.
func (m TagMapper) ToDomain(e TagModel) tag.Tag {
	return tag.New(e.ID, e.Name, e.DescriptionFragmentID)
}

// ToModel converts a domain Tag to a TagModel.
func (m TagMapper) ToModel(t tag.Tag) TagModel {
	return TagModel{
		ID:                    t.ID(),
		Name:                  t.Name(),
		DescriptionFragmentID: t.DescriptionFragmentID(),
	}
}

// TaggingMapper maps between domain Tagging and TaggingModel.
type TaggingMapper struct{}

// ToDomain converts a TaggingModel to a domain Tagging.
func (m TaggingMapper) ToDomain(e TaggingModel) tag.Tagging {
	return tag.NewTagging(e.TagID, tag.NewTarget(e.TargetID, tag.TargetKind(e.TargetType)))
}

// ToModel converts a domain Tagging to a TaggingModel.
func (m TaggingMapper) ToModel(g tag.Tagging) TaggingModel {
	return TaggingModel{
		TagID:      g.TagID(),
		TargetID:   g.Target().ID(),
		TargetType: int(g.Target().Kind()),
	}
}

// RelationMapper maps between domain Relation and RelationModel.
type RelationMapper struct{}

// ToDomain converts a RelationModel to a domain Relation.
func (m RelationMapper) ToDomain(e RelationModel) fragment.Relation {
	return fragment.NewRelation(e.ParentID, e.ChildID, e.Priority, e.Bidirectional)
}

// ToModel converts a domain Relation to a RelationModel.
func (m RelationMapper) ToModel(r fragment.Relation) RelationModel {
	return RelationModel{
		ParentID:      r.ParentID(),
		ChildID:       r.ChildID(),
		Priority:      r.Priority(),
		Bidirectional: r.Bidirectional(),
	}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
