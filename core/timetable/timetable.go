package timetable

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/devshaki/ShakSite/core"
)

//go:embed timetable.default.json
var defaultTimetable []byte

// Load decodes a timetable definition from r.
func Load(r io.Reader) (*Timetable, error) {
	var t Timetable
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(err, "decoding timetable")
	}
	return &t, nil
}

// LoadFile loads the timetable definition from path; an empty path loads the
// embedded default.
func LoadFile(path string) (*Timetable, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening timetable file %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the timetable definition compiled into the binary.
func Default() (*Timetable, error) {
	var t Timetable
	if err := json.Unmarshal(defaultTimetable, &t); err != nil {
		return nil, errors.Wrap(err, "decoding embedded timetable")
	}
	return &t, nil
}

// Validate checks the structural invariants of the definition: tag-level
// field checks plus template id uniqueness, period id uniqueness within a
// template, group template references, known day names and duplicate
// periodId assignments within one day.
//
// Duplicate day assignments are rejected here rather than silently resolved
// at runtime (runtime keeps last-write-wins for definitions that bypass
// validation).
func (t *Timetable) Validate(validate *validator.Validate) error {
	if err := validate.Struct(t); err != nil {
		return err
	}

	var flds []core.FieldError
	report := func(field, text string) {
		flds = append(flds, core.FieldError{Field: field, Error: text})
	}

	tmplIDs := make(map[string]bool, len(t.PeriodTemplates))
	for _, tmpl := range t.PeriodTemplates {
		if tmplIDs[tmpl.ID] {
			report("periodTemplates", fmt.Sprintf("duplicate template id %q", tmpl.ID))
		}
		tmplIDs[tmpl.ID] = true

		periodIDs := make(map[string]bool, len(tmpl.Periods))
		for _, p := range tmpl.Periods {
			if periodIDs[p.ID] {
				report("periodTemplates", fmt.Sprintf("template %q: duplicate period id %q", tmpl.ID, p.ID))
			}
			periodIDs[p.ID] = true
		}
	}

	groupIDs := make(map[string]bool, len(t.Groups))
	for _, g := range t.Groups {
		if groupIDs[g.ID] {
			report("groups", fmt.Sprintf("duplicate group id %q", g.ID))
		}
		groupIDs[g.ID] = true

		if !tmplIDs[g.TemplateID] {
			report("groups", fmt.Sprintf("group %q references unknown template %q", g.ID, g.TemplateID))
		}

		for _, day := range g.Week {
			if !day.Day.Valid() {
				report("groups", fmt.Sprintf("group %q: unknown day %q", g.ID, day.Day))
				continue
			}
			assigned := make(map[string]bool, len(day.Classes))
			for _, entry := range day.Classes {
				if assigned[entry.PeriodID] {
					report("groups", fmt.Sprintf("group %q, %s: duplicate assignment for period %q", g.ID, day.Day, entry.PeriodID))
				}
				assigned[entry.PeriodID] = true
			}
		}
	}

	if len(flds) > 0 {
		return core.NewValidationError(errors.New("invalid timetable definition"), flds...)
	}
	return nil
}
