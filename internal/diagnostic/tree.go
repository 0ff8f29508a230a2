package diagnostic

import (
	"fmt"

	"datakit/collection"
	"datakit/internal/match"
)

const (
	CodeOrphan      = "orphan"
	CodeMissingID   = "missing-id"
	CodeDuplicateID = "duplicate-id"
)

// CheckTree reports what ArrayToTree would silently do with items: records
// dropped because their parent is absent, records without an identifier, and
// identifiers used more than once (the last record wins as a parent). Orphans
// with a string parent get the closest existing identifiers as suggestions.
func CheckTree(items []collection.Record, opts *collection.TreeOptions) Diagnostics {
	o := opts.Resolved()

	var diags Diagnostics

	seen := make(map[any]int, len(items))
	ids := make([]string, 0, len(items))

	for i, item := range items {
		id := item[o.IDField]
		if id == nil {
			diags.AddInfo(CodeMissingID, "record has no "+o.IDField+", it cannot be a parent",
				fmt.Sprintf("[%d]", i))

			continue
		}

		key, ok := collection.IDKey(id)
		if !ok {
			diags.AddInfo(CodeMissingID,
				fmt.Sprintf("%s of type %T cannot be matched, it cannot be a parent", o.IDField, id),
				fmt.Sprintf("[%d].%s", i, o.IDField))

			continue
		}

		if first, dup := seen[key]; dup {
			diags.AddWarning(CodeDuplicateID,
				fmt.Sprintf("%s %v already used by record %d", o.IDField, id, first),
				fmt.Sprintf("[%d].%s", i, o.IDField))

			continue
		}

		seen[key] = i
		ids = append(ids, fmt.Sprint(id))
	}

	for _, i := range collection.OrphanIndexes(items, &o) {
		parent, present := items[i][o.ParentIDField]
		if !present {
			diags.AddWarning(CodeOrphan,
				fmt.Sprintf("record has no %s, record dropped", o.ParentIDField),
				fmt.Sprintf("[%d].%s", i, o.ParentIDField))

			continue
		}

		var suggestions []string
		if s, ok := parent.(string); ok {
			suggestions = match.Suggest(s, ids)
		}

		diags.AddWarning(CodeOrphan,
			fmt.Sprintf("parent %v not found, record dropped", parent),
			fmt.Sprintf("[%d].%s", i, o.ParentIDField),
			suggestions...)
	}

	return diags
}
