package service

import (
	"sort"

	"gorm.io/gorm"

	"github.com/fragbase/fragbase/domain/user"
	"github.com/fragbase/fragbase/infrastructure/dump"
)

// resolveCreators maps every distinct non-empty creator handle to a user,
// creating missing ones in one batch before any fragment is written. The
// insert ignores conflicts and the handles are re-queried afterwards, so
// two imports racing on the same new handle both end up with the winner's
// row. Returns the handle map and how many users were newly created.
func (s *Importer) resolveCreators(tx *gorm.DB, records []dump.FragmentRecord) (map[string]user.User, int, error) {
	handles := make(map[string]struct{})
	for _, rec := range records {
		if rec.Creator != "" {
			handles[rec.Creator] = struct{}{}
		}
	}
	if len(handles) == 0 {
		return map[string]user.User{}, 0, nil
	}

	names := make([]string, 0, len(handles))
	for h := range handles {
		names = append(names, h)
	}
	sort.Strings(names)

	missing := make([]user.User, len(names))
	for i, name := range names {
		missing[i] = user.New(name, user.DefaultRole)
	}
	created, err := s.users.CreateMissingIn(tx, missing)
	if err != nil {
		return nil, 0, err
	}

	byName, err := s.users.FindAllIn(tx, names)
	if err != nil {
		return nil, 0, err
	}
	return byName, created, nil
}
