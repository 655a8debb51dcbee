package generator

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/codeon/govips/internal/introspection"
)

// Config controls one generation run.
type Config struct {
	// Excluded operations are never generated and never reported as
	// unsupported; they have hand-written wrappers or are internal.
	Excluded map[string]bool

	// Now supplies the header timestamp. Defaults to time.Now; tests
	// pin it for byte-identical output.
	Now func() time.Time

	// Logger receives progress and skip reporting. Generated code
	// never goes through it. Defaults to a nop logger.
	Logger *zap.Logger
}

// Generate walks the operation hierarchy, builds a unit for every
// unique concrete nickname and writes the assembled source to w.
//
// Synonym classes resolving to an already-generated nickname are
// dropped, first-seen wins. An operation whose arguments cannot be
// mapped becomes a skipped comment and the run continues; a failed
// registry lookup aborts the run.
func Generate(reg introspection.Registry, cfg Config, w io.Writer) error {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var units []Unit
	var skipped []SkippedEntry
	// Synonym deduplication set, scoped to this run.
	generated := make(map[string]bool)

	err := introspection.Walk(reg, func(c introspection.Class) error {
		if reg.IsAbstract(c) {
			return nil
		}
		nickname, err := reg.Nickname(c)
		if err != nil {
			return err
		}
		if cfg.Excluded[nickname] {
			logger.Debug("excluding operation", zap.String("operation", nickname))
			return nil
		}
		if generated[nickname] {
			logger.Debug("skipping synonym",
				zap.String("operation", nickname), zap.String("class", c.Name()))
			return nil
		}

		op, err := introspection.Resolve(reg, c)
		if err != nil {
			return err
		}
		unit, err := Build(op)
		if err != nil {
			skipped = append(skipped, SkippedEntry{Nickname: nickname, Err: err})
			logger.Warn("skipping unsupported operation",
				zap.String("operation", nickname), zap.Error(err))
			return nil
		}

		generated[nickname] = true
		units = append(units, unit)
		_, hasResult := introspection.FirstOutput(op.Required)
		logger.Debug("generated operation",
			zap.String("operation", nickname),
			zap.Bool("result", hasResult),
			zap.Bool("method", unit.HasMethod))
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("generation complete",
		zap.Int("operations", len(units)), zap.Int("skipped", len(skipped)))

	return Assemble(w, units, skipped, now())
}
