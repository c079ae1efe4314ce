package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"specsort/internal/classify"
	"specsort/internal/config"
)

// Plan is the intended action for one directory entry, computed without
// touching anything. Destination is relative to the root and empty for
// deletions, skips, and malformed names.
type Plan struct {
	Name           string
	Classification classify.Classification
	Destination    string
}

// PlanFile classifies a single filename and derives its destination under
// the configured tree.
func PlanFile(name string, cfg *config.Config) Plan {
	c := classify.Classify(name, cfg.Rules())
	plan := Plan{Name: name, Classification: c}
	switch c.Kind {
	case classify.KindReference:
		plan.Destination = filepath.Join(cfg.Organize.ReferenceDir, c.Tag+cfg.Organize.ReferenceExtension)
	case classify.KindSample:
		plan.Destination = filepath.Join(c.Prefix, c.Tag, classify.Stem(name)+cfg.Organize.SampleExtension)
	}
	return plan
}

// PlanDir classifies every visible regular file at the top level of root.
// Entries are returned in natural numeric order (s0p2 before s0p10) so
// output and processing order are stable.
func PlanDir(root string, cfg *config.Config) ([]Plan, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", root, err)
	}

	plans := make([]Plan, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Hidden files (the run's own lock file included) are not part of
		// the acquisition set and never appear in reports.
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		plans = append(plans, PlanFile(entry.Name(), cfg))
	}

	coll := collate.New(language.English, collate.Numeric)
	sort.SliceStable(plans, func(i, j int) bool {
		return coll.CompareString(plans[i].Name, plans[j].Name) < 0
	})
	return plans, nil
}
