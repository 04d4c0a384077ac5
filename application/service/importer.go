package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/fragbase/fragbase/domain/fragment"
	"github.com/fragbase/fragbase/domain/tag"
	"github.com/fragbase/fragbase/infrastructure/archive"
	"github.com/fragbase/fragbase/infrastructure/dump"
	"github.com/fragbase/fragbase/infrastructure/media"
	"github.com/fragbase/fragbase/infrastructure/persistence"
	"github.com/fragbase/fragbase/internal/database"
)

// RecordError describes one manifest record the import skipped. Skipped
// records never abort the import; they are reported so the operator can fix
// the dump and re-run.
type RecordError struct {
	Kind   string
	Index  int
	Reason string
}

func (e RecordError) String() string {
	return fmt.Sprintf("%s[%d]: %s", e.Kind, e.Index, e.Reason)
}

// Summary reports what one import run applied.
type Summary struct {
	Attachments int
	Users       int
	Fragments   int
	Tags        int
	Taggings    int
	Relations   int
	Skipped     []RecordError
}

// Importer reconciles legacy export archives into the store. Imports are
// idempotent: re-running the same archive converges on the same state.
type Importer struct {
	db        database.Database
	users     persistence.UserStore
	fragments persistence.FragmentStore
	tags      persistence.TagStore
	taggings  persistence.TaggingStore
	relations persistence.RelationStore
	media     *media.DirectoryStore
	logger    *slog.Logger
}

// NewImporter creates an Importer.
func NewImporter(
	db database.Database,
	users persistence.UserStore,
	fragments persistence.FragmentStore,
	tags persistence.TagStore,
	taggings persistence.TaggingStore,
	relations persistence.RelationStore,
	mediaStore *media.DirectoryStore,
	logger *slog.Logger,
) *Importer {
	return &Importer{
		db:        db,
		users:     users,
		fragments: fragments,
		tags:      tags,
		taggings:  taggings,
		relations: relations,
		media:     mediaStore,
		logger:    logger,
	}
}

// Import reads the archive at path, extracts its attachments, and reconciles
// its manifest into the store. Manifest kinds are applied in dependency
// order, one transaction per kind, each committed before the next begins so
// that later kinds can reference rows the earlier ones created. An archive
// without a manifest yields attachments only.
func (s *Importer) Import(ctx context.Context, path string) (Summary, error) {
	var sum Summary

	ar, err := archive.Open(path)
	if err != nil {
		return sum, err
	}
	defer func() { _ = ar.Close() }()

	if err := s.extractAttachments(ar, &sum); err != nil {
		return sum, err
	}

	manifest, ok, err := s.readManifest(ar)
	if err != nil {
		return sum, err
	}
	if !ok {
		s.logger.Info("archive has no manifest, nothing to reconcile",
			slog.String("archive", path),
		)
		return sum, nil
	}

	passes := []struct {
		kind string
		run  func(tx *gorm.DB, sum *Summary) error
	}{
		{"fragments", func(tx *gorm.DB, sum *Summary) error {
			return s.importFragments(tx, manifest.Fragments(), sum)
		}},
		{"tags", func(tx *gorm.DB, sum *Summary) error {
			return s.importTags(tx, manifest.Tags(), sum)
		}},
		{"taggings", func(tx *gorm.DB, sum *Summary) error {
			return s.importTaggings(tx, manifest.Taggings(), sum)
		}},
		{"relations", func(tx *gorm.DB, sum *Summary) error {
			return s.importRelations(tx, manifest.Relations(), sum)
		}},
	}

	for _, pass := range passes {
		err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
			return pass.run(tx, &sum)
		})
		if err != nil {
			return sum, fmt.Errorf("import %s: %w", pass.kind, err)
		}
	}

	s.logger.Info("import finished",
		slog.String("archive", path),
		slog.Int("attachments", sum.Attachments),
		slog.Int("users_created", sum.Users),
		slog.Int("fragments", sum.Fragments),
		slog.Int("tags", sum.Tags),
		slog.Int("taggings", sum.Taggings),
		slog.Int("relations", sum.Relations),
		slog.Int("skipped", len(sum.Skipped)),
	)
	return sum, nil
}

func (s *Importer) extractAttachments(ar *archive.Archive, sum *Summary) error {
	return ar.Attachments(func(name string, r io.Reader) error {
		if err := s.media.Save(name, r); err != nil {
			return err
		}
		sum.Attachments++
		return nil
	})
}

func (s *Importer) readManifest(ar *archive.Archive) (*dump.Manifest, bool, error) {
	rc, ok, err := ar.Manifest()
	if err != nil || !ok {
		return nil, false, err
	}
	defer func() { _ = rc.Close() }()

	manifest, err := dump.Parse(rc)
	if err != nil {
		return nil, false, err
	}
	return manifest, true, nil
}

// importFragments is the first pass. Creator handles are collected up front
// and resolved to users in one batch, so repeated handles within a dump map
// to a single user row and re-imports reuse rows from earlier runs.
func (s *Importer) importFragments(tx *gorm.DB, records []dump.Record, sum *Summary) error {
	decoded := make([]dump.FragmentRecord, 0, len(records))
	for i, rec := range records {
		f, err := dump.DecodeFragment(rec)
		if err != nil {
			s.skip(sum, "fragment", i, err.Error())
			continue
		}
		decoded = append(decoded, f)
	}

	creators, created, err := s.resolveCreators(tx, decoded)
	if err != nil {
		return err
	}
	sum.Users += created

	for i, rec := range decoded {
		var creatorID *int64
		if u, ok := creators[rec.Creator]; ok {
			id := u.ID()
			creatorID = &id
		}

		f := fragment.NewImported(
			rec.ID,
			rec.Title,
			rec.Content,
			NormalizeTimestamp(rec.CreatedAt),
			NormalizeTimestamp(rec.UpdatedAt),
			creatorID,
		)
		recordErr, err := shielded(tx, func(tx *gorm.DB) error {
			return s.fragments.UpsertIn(tx, f)
		})
		if err != nil {
			return err
		}
		if recordErr != nil {
			s.skip(sum, "fragment", i, recordErr.Error())
			continue
		}
		sum.Fragments++
	}
	return nil
}

func (s *Importer) importTags(tx *gorm.DB, records []dump.Record, sum *Summary) error {
	for i, rec := range records {
		decoded, err := dump.DecodeTag(rec)
		if err != nil {
			s.skip(sum, "tag", i, err.Error())
			continue
		}

		t := tag.New(decoded.ID, decoded.Name, decoded.DescriptionFragmentID)
		recordErr, err := shielded(tx, func(tx *gorm.DB) error {
			return s.tags.UpsertIn(tx, t)
		})
		if err != nil {
			return err
		}
		if recordErr != nil {
			s.skip(sum, "tag", i, recordErr.Error())
			continue
		}
		sum.Tags++
	}
	return nil
}

func (s *Importer) importTaggings(tx *gorm.DB, records []dump.Record, sum *Summary) error {
	for i, rec := range records {
		decoded, err := dump.DecodeTagging(rec)
		if err != nil {
			s.skip(sum, "tagging", i, err.Error())
			continue
		}

		kind := tag.TargetKind(decoded.TargetType)
		if !kind.Valid() {
			s.skip(sum, "tagging", i, fmt.Sprintf("unknown target type %d", decoded.TargetType))
			continue
		}

		g := tag.NewTagging(decoded.TagID, tag.NewTarget(decoded.TargetID, kind))
		recordErr, err := shielded(tx, func(tx *gorm.DB) error {
			return s.taggings.UpsertIn(tx, g)
		})
		if err != nil {
			return err
		}
		if recordErr != nil {
			s.skip(sum, "tagging", i, recordErr.Error())
			continue
		}
		sum.Taggings++
	}
	return nil
}

func (s *Importer) importRelations(tx *gorm.DB, records []dump.Record, sum *Summary) error {
	for i, rec := range records {
		decoded, err := dump.DecodeRelation(rec)
		if err != nil {
			s.skip(sum, "relation", i, err.Error())
			continue
		}

		r := fragment.NewRelation(decoded.FromID, decoded.ToID, decoded.Priority, decoded.TwoWay)
		recordErr, err := shielded(tx, func(tx *gorm.DB) error {
			return s.relations.UpsertIn(tx, r)
		})
		if err != nil {
			return err
		}
		if recordErr != nil {
			s.skip(sum, "relation", i, recordErr.Error())
			continue
		}
		sum.Relations++
	}
	return nil
}

func (s *Importer) skip(sum *Summary, kind string, index int, reason string) {
	sum.Skipped = append(sum.Skipped, RecordError{Kind: kind, Index: index, Reason: reason})
	s.logger.Warn("skipping record",
		slog.String("kind", kind),
		slog.Int("index", index),
		slog.String("reason", reason),
	)
}

// shielded runs fn inside a savepoint so one failed record rolls back alone
// instead of poisoning the surrounding transaction. The first return is the
// record's own failure; the second is a transaction-level failure that must
// abort the pass.
func shielded(tx *gorm.DB, fn func(tx *gorm.DB) error) (error, error) {
	const name = "record"
	if err := tx.SavePoint(name).Error; err != nil {
		return nil, fmt.Errorf("savepoint: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.RollbackTo(name).Error; rbErr != nil {
			return nil, fmt.Errorf("rollback to savepoint: %w", rbErr)
		}
		return err, nil
	}
	return nil, nil
}
